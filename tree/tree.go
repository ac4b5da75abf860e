// Package tree generates a recursive fractal tree as line-segment geometry.
package tree

import "github.com/go-gl/mathgl/mgl32"

// MaxDepth caps the recursion. The segment count doubles per level; past
// 30 the vertex slice could not be allocated, and past 62 the count itself
// overflows.
const MaxDepth = 30

// Tree describes the branch recursion. Root and Tip are the trunk endpoints
// in pixel coordinates; Vertices converts to device coordinates on
// emission.
type Tree struct {
	Width  int
	Height int
	Depth  int
	Angle  float64 // degrees between the two child branches
	Ratio  float64 // child length as a fraction of the parent
	Root   mgl32.Vec2
	Tip    mgl32.Vec2
	Colour mgl32.Vec3
}

// Segments returns how many line segments the recursion emits.
func (t Tree) Segments() int {
	return 1<<(t.Depth+1) - 1
}

// Vertices emits every branch as two interleaved {x, y, z, r, g, b}
// records.
func (t Tree) Vertices() []float32 {
	vertices := make([]float32, 0, t.Segments()*12)
	halfAngle := mgl32.DegToRad(float32(t.Angle)) / 2
	return t.branch(vertices, t.Root, t.Tip, halfAngle, t.Depth)
}

func (t Tree) branch(vertices []float32, p1, p2 mgl32.Vec2, halfAngle float32, depth int) []float32 {
	vertices = t.vertex(vertices, p1)
	vertices = t.vertex(vertices, p2)
	if depth <= 0 {
		return vertices
	}

	v := p2.Sub(p1).Mul(float32(t.Ratio))
	left := mgl32.Rotate2D(halfAngle).Mul2x1(v).Add(p2)
	right := mgl32.Rotate2D(-halfAngle).Mul2x1(v).Add(p2)

	vertices = t.branch(vertices, p2, left, halfAngle, depth-1)
	return t.branch(vertices, p2, right, halfAngle, depth-1)
}

// vertex maps a pixel position to device coordinates at half scale, keeping
// the full canopy inside the viewport.
func (t Tree) vertex(vertices []float32, p mgl32.Vec2) []float32 {
	x := p.X()/float32(t.Width) - 0.5
	y := p.Y()/float32(t.Height) - 0.5
	return append(vertices, x, y, 0, t.Colour.X(), t.Colour.Y(), t.Colour.Z())
}
