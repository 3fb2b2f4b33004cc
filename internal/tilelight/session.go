package tilelight

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/xid"
)

// Session runs the sample loop: new grid, place lights, accumulate, render.
type Session struct {
	ID            string
	Samples       int
	Width, Height int
	Workers       int // > 1 uses AccumulateParallel
	Placer        Placer
	Renderer      *Renderer
	Out           io.Writer
	State         PlaceState
}

// NewSession builds a session from a resolved config.
func NewSession(cfg *Config, placer Placer, r *Renderer, out io.Writer) *Session {
	s := &Session{
		ID:       xid.New().String(),
		Samples:  cfg.Samples,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Workers:  cfg.Workers,
		Placer:   placer,
		Renderer: r,
		Out:      out,
		State: PlaceState{
			Intensity: *cfg.Intensity,
			Range:     Real(cfg.Range),
			RNG:       rand.New(rand.NewSource(cfg.Seed)),
		},
	}
	DebugLog("Session %s: %d samples on %dx%d, intensity=%g range=%d seed=%d",
		s.ID, s.Samples, s.Width, s.Height, *cfg.Intensity, cfg.Range, cfg.Seed)
	return s
}

// Step computes one sample and returns its grid and lights.
func (s *Session) Step() (*Grid, []Light, error) {
	g, err := NewGrid(s.Width, s.Height)
	if err != nil {
		return nil, nil, err
	}
	lights := s.Placer.Place(g, &s.State)
	if s.Workers > 1 {
		err = AccumulateParallel(g, lights, s.Workers)
	} else {
		err = Accumulate(g, lights)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("sample #%d: %w", s.State.Sample+1, err)
	}
	s.State.Sample++
	return g, lights, nil
}

// Run renders every sample to Out, then the legend. It stops between
// samples when ctx is done.
func (s *Session) Run(ctx context.Context) error {
	for i := 0; i < s.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, lights, err := s.Step()
		if err != nil {
			return err
		}
		if Debug {
			st := g.Stats()
			DebugLog("Session %s sample #%d: lights=%d lit=%d max=%.4f mean=%.4f sd=%.4f",
				s.ID, i+1, len(lights), st.Lit, st.Max, st.Mean, st.StdDev)
		}
		if _, err := fmt.Fprintf(s.Out, "SAMPLE #%d\n", i+1); err != nil {
			return err
		}
		if err := s.Renderer.Render(s.Out, g); err != nil {
			return err
		}
	}
	return s.Renderer.Legend(s.Out)
}
