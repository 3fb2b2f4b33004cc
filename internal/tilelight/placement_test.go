package tilelight

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPlacerAlwaysPlacing(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	p := &RandomPlacer{MaxLights: 2, Roll: 1, Threshold: -1, Step: 1}
	st := &PlaceState{Intensity: 0.5, Range: 3, RNG: rand.New(rand.NewSource(1))}

	lights := p.Place(g, st)
	require.Len(t, lights, 2)
	// Column by column: (0,0) then (0,1).
	assert.Equal(t, Light{X: 0, Y: 0, Intensity: 0.5, Range: 3}, lights[0])
	assert.Equal(t, Light{X: 0, Y: 1, Intensity: 1.5, Range: 3}, lights[1])
	assert.Equal(t, 2.5, st.Intensity)

	// The counter carries over into the next sample.
	lights = p.Place(g, st)
	require.Len(t, lights, 2)
	assert.Equal(t, 2.5, lights[0].Intensity)
	assert.Equal(t, 4.5, st.Intensity)
}

func TestRandomPlacerNeverPlacing(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	p := &RandomPlacer{MaxLights: 2, Roll: 60, Threshold: 59, Step: 1}
	st := &PlaceState{Intensity: 0.5, Range: 3, RNG: rand.New(rand.NewSource(1))}
	assert.Empty(t, p.Place(g, st))
	assert.Equal(t, 0.5, st.Intensity)
}

func TestRandomPlacerDefaults(t *testing.T) {
	g := newTestGrid(t, GridWidth, GridHeight)
	p := NewRandomPlacer(MaxLights)
	for seed := int64(1); seed <= 50; seed++ {
		st := &PlaceState{Intensity: 0.25, Range: 2, RNG: rand.New(rand.NewSource(seed))}
		lights := p.Place(g, st)
		require.LessOrEqual(t, len(lights), MaxLights)
		for i, l := range lights {
			assert.True(t, g.InBounds(int(l.X), int(l.Y)))
			assert.Equal(t, 0.25+Real(i), l.Intensity)
			assert.Equal(t, 2.0, l.Range)
		}
		assert.Equal(t, 0.25+Real(len(lights)), st.Intensity)
	}
}

func TestRandomPlacerDeterministicForSeed(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	p := NewRandomPlacer(5)
	run := func() []Light {
		st := &PlaceState{Intensity: 1, Range: 2, RNG: rand.New(rand.NewSource(42))}
		var all []Light
		for i := 0; i < 4; i++ {
			all = append(all, p.Place(g, st)...)
		}
		return all
	}
	assert.Equal(t, run(), run())
}

func TestFixedPlacerCopies(t *testing.T) {
	p := &FixedPlacer{Lights: []Light{{X: 1, Y: 2, Intensity: 1, Range: 3}}}
	st := &PlaceState{Intensity: 9}
	got := p.Place(nil, st)
	got[0].X = 8
	assert.Equal(t, 1.0, p.Lights[0].X)
	assert.Equal(t, 9.0, st.Intensity)
}

func TestPlacerFunc(t *testing.T) {
	var p Placer = PlacerFunc(func(g *Grid, st *PlaceState) []Light {
		return []Light{{X: Real(g.Width - 1), Y: 0, Intensity: st.Intensity, Range: st.Range}}
	})
	lights := p.Place(newTestGrid(t, 4, 4), &PlaceState{Intensity: 2, Range: 1})
	assert.Equal(t, []Light{{X: 3, Y: 0, Intensity: 2, Range: 1}}, lights)
}
