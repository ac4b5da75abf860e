package buddha

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		count, max uint32
		want       float32
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
	}
	for _, c := range cases {
		if got := normalize(c.count, c.max); got != c.want {
			t.Errorf("normalize(%v, %v) = %v, want %v", c.count, c.max, got, c.want)
		}
	}
}

func TestBuildVertices(t *testing.T) {
	red := NewHeatmap(2, 2)
	green := NewHeatmap(2, 2)
	blue := NewHeatmap(2, 2)

	red.Inc(0, 0)
	red.Inc(0, 0) // brightest cell
	green.Inc(0, 1)
	blue.Inc(1, 0)

	vertices := BuildVertices(red, green, blue, 2)
	if len(vertices) != 2*2*6 {
		t.Fatalf("vertex count %v, want %v", len(vertices), 2*2*6)
	}

	// Row-major pixel order; both axes flip into device coordinates.
	want := []float32{
		1, 1, 0, 1, 0, 0, // (0,0) red 2/2
		0, 1, 0, 0, 0.5, 0, // (0,1) green 1/2
		1, 0, 0, 0, 0, 0.5, // (1,0) blue 1/2
		0, 0, 0, 0, 0, 0, // (1,1)
	}
	for i := range want {
		if vertices[i] != want[i] {
			t.Errorf("vertex[%v] = %v, want %v", i, vertices[i], want[i])
		}
	}
}

func TestBuildVerticesMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched channels did not panic")
		}
	}()
	BuildVertices(NewHeatmap(2, 2), NewHeatmap(3, 2), NewHeatmap(2, 2), 1)
}
