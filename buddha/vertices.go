package buddha

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// normalize rescales a count against the brightest cell into [0, 1]. A zero
// maximum yields 0 rather than dividing by it; callers that consider an
// all-zero image an error reject it before building vertices.
func normalize(count, max uint32) float32 {
	if max == 0 {
		return 0
	}
	return float32(count) / float32(max)
}

// BuildVertices flattens three channel heatmaps into interleaved
// {x, y, z, r, g, b} records, one per pixel, positions in device
// coordinates with both axes flipped, colours scaled by the shared maximum.
// All heatmaps must share dimensions.
func BuildVertices(red, green, blue *Heatmap, max uint32) []float32 {
	if red.width != green.width || red.width != blue.width ||
		red.height != green.height || red.height != blue.height {
		panic(fmt.Sprintf("channel size mismatch %vx%v / %vx%v / %vx%v",
			red.width, red.height, green.width, green.height, blue.width, blue.height))
	}

	width, height := red.width, red.height
	vertices := make([]float32, 0, width*height*6)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			colour := mgl32.Vec3{
				normalize(red.At(row, col), max),
				normalize(green.At(row, col), max),
				normalize(blue.At(row, col), max),
			}

			x := -(float32(col)*2/float32(width) - 1)
			y := -(float32(row)*2/float32(height) - 1)
			vertices = append(vertices, x, y, 0, colour[0], colour[1], colour[2])
		}
	}
	return vertices
}
