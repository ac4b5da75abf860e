package buddha

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// Verbose enables progress logging during generation.
var Verbose = false

// Generator draws random points over Rect and accumulates their escape
// trajectories into a Width×Height heatmap. The rectangle must be valid;
// configuration is checked before any generator runs.
type Generator struct {
	Rect    Rect
	Width   int
	Height  int
	Samples int
	Workers int // <= 0 means runtime.NumCPU()
}

// Generate runs one full sampling pass with the given iteration budget.
// Samples are sharded across workers, each with its own random stream and
// private heatmap, merged once all workers finish. The result is identical
// for a fixed seed and worker count, and invariant under sample order.
func (g Generator) Generate(iterations int, seed int64) *Heatmap {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	base := g.Samples / workers
	rem := g.Samples % workers

	var done int64
	step := int64(g.Samples / 10)
	if step == 0 {
		step = 1
	}

	partials := make([]*Heatmap, workers)
	var wg sync.WaitGroup
	for wid := 0; wid < workers; wid++ {
		samples := base
		if wid < rem {
			samples++
		}

		wg.Add(1)
		go func(wid, samples int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed + int64(uint64(wid)*0x9e3779b97f4a7c15)))
			hm := NewHeatmap(g.Width, g.Height)
			traj := make([]complex128, 0, iterations)

			for i := 0; i < samples; i++ {
				traj = Trajectory(traj[:0], g.Rect.Sample(rng), iterations)
				accumulate(hm, g.Rect, traj)

				if Verbose {
					if n := atomic.AddInt64(&done, 1); n%step == 0 {
						log.Printf("%v/%v samples", n, g.Samples)
					}
				}
			}

			partials[wid] = hm
		}(wid, samples)
	}
	wg.Wait()

	hm := partials[0]
	for _, p := range partials[1:] {
		hm.Add(p)
	}
	return hm
}

// accumulate increments one cell for every trajectory point inside the
// viewing rectangle. Contains drops the maximum edge itself, but the index
// arithmetic of a point just inside it can still round up to the full
// span, so computed rows and columns clamp to the last cell.
func accumulate(hm *Heatmap, rect Rect, traj []complex128) {
	for _, z := range traj {
		if !rect.Contains(z) {
			continue
		}
		row := rect.Row(real(z), hm.height)
		col := rect.Col(imag(z), hm.width)
		if row == hm.height {
			row = hm.height - 1
		}
		if col == hm.width {
			col = hm.width - 1
		}
		hm.Inc(row, col)
	}
}
