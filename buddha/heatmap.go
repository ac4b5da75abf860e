package buddha

import "fmt"

// Heatmap counts trajectory hits per pixel in a row-major grid.
type Heatmap struct {
	width  int
	height int
	counts []uint32
}

// NewHeatmap allocates a zeroed width×height grid. It panics on
// non-positive dimensions.
func NewHeatmap(width, height int) *Heatmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("heatmap dimensions %vx%v must be positive", width, height))
	}
	return &Heatmap{
		width:  width,
		height: height,
		counts: make([]uint32, width*height),
	}
}

func (h *Heatmap) Width() int  { return h.width }
func (h *Heatmap) Height() int { return h.height }

// Inc adds one hit at (row, col).
func (h *Heatmap) Inc(row, col int) {
	h.counts[row*h.width+col]++
}

// At returns the count at (row, col).
func (h *Heatmap) At(row, col int) uint32 {
	return h.counts[row*h.width+col]
}

// Add merges o elementwise. It panics when dimensions differ.
func (h *Heatmap) Add(o *Heatmap) {
	if h.width != o.width || h.height != o.height {
		panic(fmt.Sprintf("heatmap size mismatch %vx%v + %vx%v",
			h.width, h.height, o.width, o.height))
	}
	for i, c := range o.counts {
		h.counts[i] += c
	}
}

// Max returns the largest count in the grid, 0 for an untouched one.
func (h *Heatmap) Max() uint32 {
	var max uint32
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}
	return max
}
