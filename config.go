package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/stewi1014/glbuddhabrot/buddha"
	"github.com/stewi1014/glbuddhabrot/tree"
)

// Config carries every tunable parameter. Zero values take defaults, so a
// partial JSON file or none at all is enough to run.
type Config struct {
	Scene      string     `json:"scene"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Samples    int        `json:"samples"`
	Iterations Iterations `json:"iterations"`
	Min        Bound      `json:"min"`
	Max        Bound      `json:"max"`
	Seed       int64      `json:"seed"`
	Workers    int        `json:"workers"`
	Tree       TreeConfig `json:"tree"`
}

// Iterations holds the per-channel escape budgets. Channels with deeper
// budgets reveal finer structure.
type Iterations struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
}

// Bound is one corner of the viewing rectangle.
type Bound struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

type TreeConfig struct {
	Depth int     `json:"depth"`
	Angle float64 `json:"angle"`
	Ratio float64 `json:"ratio"`
}

// LoadConfig reads a JSON configuration file, or returns an empty
// configuration for path "". Defaults and validation are applied separately
// so flag overrides can slot in between.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %v: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills zero values. Explicitly invalid values are left for
// Validate to reject.
func (c *Config) ApplyDefaults() {
	if c.Scene == "" {
		c.Scene = "buddhabrot"
	}
	if c.Width == 0 && c.Height == 0 {
		if c.Scene == "tree" {
			c.Width, c.Height = 800, 600
		} else {
			c.Width, c.Height = 200, 200
		}
	}
	if c.Samples == 0 {
		c.Samples = c.Width * c.Height * 100
	}
	if c.Iterations.Red == 0 {
		c.Iterations.Red = 200
	}
	if c.Iterations.Green == 0 {
		c.Iterations.Green = 200
	}
	if c.Iterations.Blue == 0 {
		c.Iterations.Blue = 800
	}
	if c.Min == (Bound{}) && c.Max == (Bound{}) {
		c.Min = Bound{Real: -2, Imag: -2}
		c.Max = Bound{Real: 2, Imag: 2}
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Tree.Depth == 0 {
		c.Tree.Depth = 10
	}
	if c.Tree.Angle == 0 {
		c.Tree.Angle = 50
	}
	if c.Tree.Ratio == 0 {
		c.Tree.Ratio = 0.75
	}
}

// Validate reports the first configuration error. It runs after
// ApplyDefaults and before any generation.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width %v must be positive", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height %v must be positive", c.Height)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples %v must be positive", c.Samples)
	}
	if c.Iterations.Red <= 0 || c.Iterations.Green <= 0 || c.Iterations.Blue <= 0 {
		return fmt.Errorf("iteration budgets %+v must be positive", c.Iterations)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers %v must be positive", c.Workers)
	}
	if err := c.Rect().Validate(); err != nil {
		return err
	}
	if c.Tree.Depth < 0 || c.Tree.Depth > tree.MaxDepth {
		return fmt.Errorf("tree depth %v must be between 0 and %v", c.Tree.Depth, tree.MaxDepth)
	}
	if c.Tree.Ratio <= 0 {
		return fmt.Errorf("tree ratio %v must be positive", c.Tree.Ratio)
	}
	return nil
}

// Rect converts the configured bounds into the sampled viewing rectangle.
func (c *Config) Rect() buddha.Rect {
	return buddha.Rect{
		Min: complex(c.Min.Real, c.Min.Imag),
		Max: complex(c.Max.Real, c.Max.Imag),
	}
}
