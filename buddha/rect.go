package buddha

import (
	"fmt"
	"math/rand"
)

// Rect is the viewing rectangle: the region of the complex plane that is
// both sampled and rendered.
type Rect struct {
	Min complex128
	Max complex128
}

// Validate rejects rectangles whose span is zero or negative in either
// axis. Row and Col divide by the spans.
func (r Rect) Validate() error {
	if real(r.Min) >= real(r.Max) || imag(r.Min) >= imag(r.Max) {
		return fmt.Errorf("degenerate viewing rectangle %v..%v", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether z lies within the rectangle. Membership is
// half-open; points on the maximum edge of either axis are excluded.
func (r Rect) Contains(z complex128) bool {
	return real(z) >= real(r.Min) && real(z) < real(r.Max) &&
		imag(z) >= imag(r.Min) && imag(z) < imag(r.Max)
}

// Sample draws a point uniformly over the rectangle, real and imaginary
// parts independent.
func (r Rect) Sample(rng *rand.Rand) complex128 {
	return complex(
		real(r.Min)+rng.Float64()*(real(r.Max)-real(r.Min)),
		imag(r.Min)+rng.Float64()*(imag(r.Max)-imag(r.Min)),
	)
}

// Row maps a real coordinate to a pixel row, truncating toward zero. The
// result reaches height for a value at the maximum, and for one just below
// it whose offset from the minimum rounds to the full span; callers filter
// with Contains and clamp before indexing.
func (r Rect) Row(re float64, height int) int {
	return int((re - real(r.Min)) * float64(height) / (real(r.Max) - real(r.Min)))
}

// Col maps an imaginary coordinate to a pixel column.
func (r Rect) Col(im float64, width int) int {
	return int((im - imag(r.Min)) * float64(width) / (imag(r.Max) - imag(r.Min)))
}
