package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stewi1014/glbuddhabrot/buddha"
	"github.com/stewi1014/glbuddhabrot/tree"
)

var ErrUnknownScene = errors.New("unknown scene")

// Scene produces the vertex buffer for one drawable data set.
type Scene struct {
	Name     string
	Mode     uint32
	Vertices func(cfg *Config) ([]float32, error)
}

var scenes []Scene

func RegisterScene(s Scene) {
	scenes = append(scenes, s)
}

// GetScene finds a registered scene by name.
func GetScene(name string) (Scene, error) {
	for _, s := range scenes {
		if s.Name == name {
			return s, nil
		}
	}
	return Scene{}, fmt.Errorf("%w %q, have %v", ErrUnknownScene, name, SceneNames())
}

func SceneNames() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return names
}

func init() {
	RegisterScene(Scene{
		Name:     "buddhabrot",
		Mode:     gl.POINTS,
		Vertices: buddhabrotVertices,
	})
	RegisterScene(Scene{
		Name:     "tree",
		Mode:     gl.LINES,
		Vertices: treeVertices,
	})
}

// buddhabrotVertices runs one generation pass per colour channel and
// flattens the result against the brightest cell of all three. Channels use
// the shared seed offset by their index, so equal budgets still sample
// different points.
func buddhabrotVertices(cfg *Config) ([]float32, error) {
	gen := buddha.Generator{
		Rect:    cfg.Rect(),
		Width:   cfg.Width,
		Height:  cfg.Height,
		Samples: cfg.Samples,
		Workers: cfg.Workers,
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	channels := []struct {
		name       string
		iterations int
	}{
		{"red", cfg.Iterations.Red},
		{"green", cfg.Iterations.Green},
		{"blue", cfg.Iterations.Blue},
	}

	var heatmaps [3]*buddha.Heatmap
	var max uint32
	for i, ch := range channels {
		start := time.Now()
		heatmaps[i] = gen.Generate(ch.iterations, seed+int64(i))
		if m := heatmaps[i].Max(); m > max {
			max = m
		}
		log.Printf("%v channel: %v samples, %v iterations in %v",
			ch.name, gen.Samples, ch.iterations, time.Since(start))
	}

	if max == 0 {
		return nil, errors.New("no escaping trajectory crossed the viewing rectangle; nothing to draw")
	}
	return buddha.BuildVertices(heatmaps[0], heatmaps[1], heatmaps[2], max), nil
}

var treeColour = mgl32.Vec3{0.5, 0, 0}

func treeVertices(cfg *Config) ([]float32, error) {
	t := tree.Tree{
		Width:  cfg.Width,
		Height: cfg.Height,
		Depth:  cfg.Tree.Depth,
		Angle:  cfg.Tree.Angle,
		Ratio:  cfg.Tree.Ratio,
		Root:   mgl32.Vec2{float32(cfg.Width) / 2, float32(cfg.Height) / 6},
		Tip:    mgl32.Vec2{float32(cfg.Width) / 2, float32(cfg.Height) / 2},
		Colour: treeColour,
	}
	return t.Vertices(), nil
}
