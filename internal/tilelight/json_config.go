package tilelight

import (
	"encoding/json"
	"fmt"
	"os"
)

type LightCfg struct {
	X         Real `json:"x"`
	Y         Real `json:"y"`
	Intensity Real `json:"intensity"`
	Range     Real `json:"range"`
}

// Config holds everything a run needs. Samples, Intensity and Range are the
// operator inputs: zero/nil means "not given", and Resolve either prompts
// for them or falls back to the defaults.
type Config struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Samples   int        `json:"samples,omitempty"`
	Intensity *Real      `json:"intensity,omitempty"`
	Range     int        `json:"range,omitempty"`
	MaxLights int        `json:"maxLights,omitempty"`
	Placement string     `json:"placement,omitempty"` // "random" or "fixed"
	Seed      int64      `json:"seed,omitempty"`
	Workers   int        `json:"workers,omitempty"`
	Color     string     `json:"color,omitempty"`
	Lights    []LightCfg `json:"lights,omitempty"`
}

// Build validates a configured light.
func (lc LightCfg) Build() (Light, error) {
	return NewLight(lc.X, lc.Y, lc.Intensity, lc.Range)
}

// DefaultConfig returns a config with every non-operator field defaulted.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Width <= 0 {
		cfg.Width = GridWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = GridHeight
	}
	if cfg.MaxLights <= 0 {
		cfg.MaxLights = MaxLights
	}
	if cfg.Placement == "" {
		cfg.Placement = PlacementRandom
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
}

// LoadConfig reads a JSON scene file; an empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), placement=%s, lights=%d, seed=%d",
		path, cfg.Width, cfg.Height, cfg.Placement, len(cfg.Lights), cfg.Seed)
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Placement {
	case PlacementRandom:
	case PlacementFixed:
		if len(cfg.Lights) == 0 {
			return fmt.Errorf("placement %q needs at least one light", PlacementFixed)
		}
	default:
		return fmt.Errorf("unknown placement %q", cfg.Placement)
	}
	for i, lc := range cfg.Lights {
		l := Light{X: lc.X, Y: lc.Y, Intensity: lc.Intensity, Range: lc.Range}
		if err := l.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// Resolve fills the operator inputs that are still unset, asking p when it
// is non-nil and using the defaults otherwise, then validates them.
func (cfg *Config) Resolve(p *Prompt) error {
	cfg.applyDefaults()
	if cfg.Samples == 0 {
		cfg.Samples = Samples
		if p != nil {
			n, err := p.Int("Enter a number of samples: ", 1)
			if err != nil {
				return err
			}
			cfg.Samples = n
		}
	}
	if cfg.Intensity == nil {
		v := Real(Intensity)
		if p != nil {
			f, err := p.Float("Enter light intensity (0->1): ", 0)
			if err != nil {
				return err
			}
			v = f
		}
		cfg.Intensity = &v
	}
	if cfg.Range == 0 {
		cfg.Range = Range
		if p != nil {
			n, err := p.Int("Enter light range (1->9): ", 1)
			if err != nil {
				return err
			}
			cfg.Range = n
		}
	}
	switch {
	case cfg.Samples < 1:
		return fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	case cfg.Range < 1:
		return fmt.Errorf("range must be positive, got %d", cfg.Range)
	case !isFinite(*cfg.Intensity) || *cfg.Intensity < 0:
		return &InvalidLightError{Index: -1, Field: "intensity", Value: *cfg.Intensity}
	}
	return cfg.validate()
}

// Placer returns the placement strategy the config names.
func (cfg *Config) Placer() (Placer, error) {
	switch cfg.Placement {
	case PlacementFixed:
		lights := make([]Light, 0, len(cfg.Lights))
		for _, lc := range cfg.Lights {
			l, err := lc.Build()
			if err != nil {
				return nil, err
			}
			lights = append(lights, l)
		}
		return &FixedPlacer{Lights: lights}, nil
	case PlacementRandom, "":
		return NewRandomPlacer(cfg.MaxLights), nil
	}
	return nil, fmt.Errorf("unknown placement %q", cfg.Placement)
}
