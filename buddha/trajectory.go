// Package buddha generates Buddhabrot heatmaps by Monte Carlo sampling of
// escape trajectories in the complex plane.
package buddha

// Trajectories end once the squared magnitude of z exceeds this.
const escapeMagnitude2 = 2.0

func sqMagnitude(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Trajectory appends to buf every z visited by iterating z ← z²+c from z=0,
// stopping once z escapes or the budget runs out. Points that never escape
// within the budget are presumed inside the set and yield an empty
// trajectory; the first recorded value is z₁ = c. Pass buf[:0] to reuse an
// existing allocation across samples.
func Trajectory(buf []complex128, c complex128, budget int) []complex128 {
	var z complex128
	for i := 0; i < budget; i++ {
		z = z*z + c
		buf = append(buf, z)
		if sqMagnitude(z) > escapeMagnitude2 {
			return buf
		}
	}
	return buf[:0]
}
