package buddha

import (
	"math/rand"
	"testing"
)

func TestTrajectoryInsideSet(t *testing.T) {
	for _, c := range []complex128{0, -1, complex(0.1, 0.1)} {
		if traj := Trajectory(nil, c, 100); len(traj) != 0 {
			t.Errorf("Trajectory(%v) returned %v points, want none", c, len(traj))
		}
	}
}

func TestTrajectoryEscapes(t *testing.T) {
	c := complex(2, 2)
	traj := Trajectory(nil, c, 10)
	if len(traj) != 1 {
		t.Fatalf("Trajectory(%v) returned %v points, want 1", c, len(traj))
	}
	if traj[0] != c {
		t.Errorf("first point = %v, want %v", traj[0], c)
	}
}

func TestTrajectoryEscapeOnFinalIteration(t *testing.T) {
	// z₁ = 1+i has squared magnitude exactly 2 and survives the strict
	// comparison; z₂ = 1+3i escapes.
	c := complex(1, 1)
	if traj := Trajectory(nil, c, 2); len(traj) != 2 {
		t.Fatalf("budget 2 returned %v points, want 2", len(traj))
	}
	if traj := Trajectory(nil, c, 1); len(traj) != 0 {
		t.Errorf("budget 1 returned %v points, want none", len(traj))
	}
}

func TestTrajectoryEscapeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := complex(rng.Float64()*4-2, rng.Float64()*4-2)
		traj := Trajectory(nil, c, 50)
		if len(traj) == 0 {
			continue
		}
		if len(traj) > 50 {
			t.Fatalf("trajectory of %v longer than budget: %v", c, len(traj))
		}
		for j, z := range traj[:len(traj)-1] {
			if sqMagnitude(z) > escapeMagnitude2 {
				t.Fatalf("point %v of %v escaped early: %v", j, c, z)
			}
		}
		if last := traj[len(traj)-1]; sqMagnitude(last) <= escapeMagnitude2 {
			t.Fatalf("last point of %v did not escape: %v", c, last)
		}
	}
}

func TestTrajectoryReusesBuffer(t *testing.T) {
	buf := make([]complex128, 0, 8)
	traj := Trajectory(buf, complex(2, 2), 8)
	if len(traj) != 1 || cap(traj) != 8 {
		t.Errorf("got len %v cap %v, want len 1 cap 8", len(traj), cap(traj))
	}
}
