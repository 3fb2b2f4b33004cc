package tilelight

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// passStats counts what one accumulation pass did.
type passStats struct {
	Scanned    int // tiles inside a light's clipped box
	OutOfRange int // scanned but farther than the light's range
	Lit        int // received a positive contribution
	Sources    int // flagged as a light source
	Clipped    int // lights (or light/band pairs) whose box was empty
}

func (s *passStats) add(o passStats) {
	s.Scanned += o.Scanned
	s.OutOfRange += o.OutOfRange
	s.Lit += o.Lit
	s.Sources += o.Sources
	s.Clipped += o.Clipped
}

type PassLogCache struct {
	mu     sync.Mutex
	passes map[string][]passStats // keyed by pass kind
}

var cache = &PassLogCache{
	passes: make(map[string][]passStats),
}

func logPass(kind string, st passStats) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.passes[kind] = append(cache.passes[kind], st)
}

// PassStats prints the collected per-kind totals.
func PassStats(w io.Writer) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	kinds := make([]string, 0, len(cache.passes))
	for k := range cache.passes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		var sum passStats
		for _, st := range cache.passes[k] {
			sum.add(st)
		}
		fmt.Fprintf(w, "Pass type %s: %d passes, scanned=%d outOfRange=%d lit=%d sources=%d clipped=%d\n",
			k, len(cache.passes[k]), sum.Scanned, sum.OutOfRange, sum.Lit, sum.Sources, sum.Clipped)
	}
}
