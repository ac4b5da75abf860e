package tree

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func defaultTree() Tree {
	return Tree{
		Width:  800,
		Height: 600,
		Depth:  10,
		Angle:  50,
		Ratio:  0.75,
		Root:   mgl32.Vec2{400, 100},
		Tip:    mgl32.Vec2{400, 300},
		Colour: mgl32.Vec3{0.5, 0, 0},
	}
}

func TestSegments(t *testing.T) {
	tr := defaultTree()
	if got := tr.Segments(); got != 2047 {
		t.Errorf("Segments() = %v, want 2047", got)
	}

	tr.Depth = 0
	if got := tr.Segments(); got != 1 {
		t.Errorf("Segments() = %v, want 1", got)
	}

	// The count must not overflow anywhere in the validated depth range.
	tr.Depth = MaxDepth
	if got := tr.Segments(); got <= 0 {
		t.Errorf("Segments() = %v at the depth cap, want positive", got)
	}
}

func TestVerticesCount(t *testing.T) {
	tr := defaultTree()
	if got := len(tr.Vertices()); got != 2047*12 {
		t.Errorf("len(Vertices()) = %v, want %v", got, 2047*12)
	}
}

func TestTrunkPlacement(t *testing.T) {
	tr := defaultTree()
	tr.Depth = 0

	vertices := tr.Vertices()
	if len(vertices) != 12 {
		t.Fatalf("len(Vertices()) = %v, want 12", len(vertices))
	}

	checkVertex(t, vertices, tr.Root, tr)
	checkVertex(t, vertices[6:], tr.Tip, tr)
}

func TestBranchGeometry(t *testing.T) {
	tr := defaultTree()
	tr.Depth = 1

	vertices := tr.Vertices()
	if len(vertices) != 3*12 {
		t.Fatalf("len(Vertices()) = %v, want %v", len(vertices), 3*12)
	}

	// Both children sprout from the tip, ratio-scaled and rotated ±25° from
	// the trunk direction (0, 200).
	halfAngle := 25 * math.Pi / 180
	dx := float32(-150 * math.Sin(halfAngle))
	dy := float32(150 * math.Cos(halfAngle))

	checkVertex(t, vertices[12:], tr.Tip, tr)
	checkVertex(t, vertices[18:], mgl32.Vec2{400 + dx, 300 + dy}, tr)
	checkVertex(t, vertices[24:], tr.Tip, tr)
	checkVertex(t, vertices[30:], mgl32.Vec2{400 - dx, 300 + dy}, tr)
}

func checkVertex(t *testing.T, got []float32, p mgl32.Vec2, tr Tree) {
	t.Helper()
	want := []float32{
		p.X()/float32(tr.Width) - 0.5,
		p.Y()/float32(tr.Height) - 0.5,
		0,
		tr.Colour.X(), tr.Colour.Y(), tr.Colour.Z(),
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Errorf("vertex component %v = %v, want %v", i, got[i], want[i])
		}
	}
}
