package tilelight

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// AccumulateParallel splits the grid into disjoint row bands, one goroutine
// per band. Each band applies all lights in slice order to its own rows, so
// every tile sees the same additions in the same order as Accumulate and the
// result is bit-identical. workers <= 0 uses runtime.NumCPU(); a single
// worker runs Accumulate.
func AccumulateParallel(g *Grid, lights []Light, workers int) error {
	if g == nil {
		return ErrNilGrid
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imin(workers, g.Height)
	if workers <= 1 {
		return Accumulate(g, lights)
	}
	if err := validateLights(lights); err != nil {
		return err
	}

	rowsPer, rem := g.Height/workers, g.Height%workers
	DebugLogOnce("Launching %d band workers (%d rows each, +1 for first %d)", workers, rowsPer, rem)

	var (
		mu    sync.Mutex
		total passStats
		eg    errgroup.Group
	)
	lo := 0
	for w := 0; w < workers; w++ {
		n := rowsPer
		if w < rem {
			n++
		}
		rowLo, rowHi := lo, lo+n-1
		lo += n
		eg.Go(func() error {
			var st passStats
			for i := range lights {
				applyLight(g, &lights[i], rowLo, rowHi, &st)
			}
			mu.Lock()
			total.add(st)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if Debug {
		logPass("parallel", total)
	}
	return nil
}
