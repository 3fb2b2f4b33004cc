package tilelight

import (
	"context"
	"io"
	"time"
)

// IO is the operator's side of a run.
type IO struct {
	In       io.Reader // nil disables prompting
	Out      io.Writer
	Terminal bool // Out is a terminal; "auto" color picks ANSI
}

// Run resolves the config, then renders every sample to rw.Out.
func Run(ctx context.Context, cfg *Config, rw IO) error {
	var p *Prompt
	if rw.In != nil {
		p = NewPrompt(rw.In, rw.Out)
	}
	if err := cfg.Resolve(p); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	mode, err := ParseRenderMode(cfg.Color, rw.Terminal)
	if err != nil {
		return err
	}
	placer, err := cfg.Placer()
	if err != nil {
		return err
	}

	s := NewSession(cfg, placer, NewRenderer(mode), rw.Out)
	start := time.Now()
	if err := s.Run(ctx); err != nil {
		return err
	}
	DebugLog("Session %s: %d samples, time: %s", s.ID, s.Samples, time.Since(start))
	if Debug {
		PassStats(DebugOut)
	}
	return nil
}
