package tilelight

import (
	"math/rand"
)

// PlaceState is the driver state threaded through the sample loop.
// Intensity is the value the next placed light gets; placers that create
// lights advance it.
type PlaceState struct {
	Sample    int
	Intensity Real
	Range     Real
	RNG       *rand.Rand
}

// Placer produces the lights for one sample.
type Placer interface {
	Place(g *Grid, st *PlaceState) []Light
}

// PlacerFunc adapts a function to Placer.
type PlacerFunc func(g *Grid, st *PlaceState) []Light

func (f PlacerFunc) Place(g *Grid, st *PlaceState) []Light { return f(g, st) }

// RandomPlacer walks the grid column by column and rolls for a light on
// every tile until MaxLights lights are placed. Each placed light takes the
// current intensity and then bumps it by Step, so intensity keeps growing
// across samples.
type RandomPlacer struct {
	MaxLights int
	Roll      int // draw is rng.Intn(Roll)
	Threshold int // draw > Threshold places a light
	Step      Real
}

func NewRandomPlacer(maxLights int) *RandomPlacer {
	return &RandomPlacer{
		MaxLights: maxLights,
		Roll:      PlaceRoll,
		Threshold: PlaceThreshold,
		Step:      IntensityStep,
	}
}

func (p *RandomPlacer) Place(g *Grid, st *PlaceState) []Light {
	lights := make([]Light, 0, p.MaxLights)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if len(lights) >= p.MaxLights {
				return lights
			}
			if st.RNG.Intn(p.Roll) > p.Threshold {
				lights = append(lights, Light{
					X:         Real(x),
					Y:         Real(y),
					Intensity: st.Intensity,
					Range:     st.Range,
				})
				st.Intensity += p.Step
			}
		}
	}
	return lights
}

// FixedPlacer returns the same lights every sample.
type FixedPlacer struct {
	Lights []Light
}

func (p *FixedPlacer) Place(_ *Grid, _ *PlaceState) []Light {
	out := make([]Light, len(p.Lights))
	copy(out, p.Lights)
	return out
}
