package tilelight

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tile is one grid cell.
type Tile struct {
	X, Y          int
	Brightness    Real
	IsLightSource bool
}

// Grid owns Width*Height tiles in a flat row-major buffer: idx = y*Width + x.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// NewGrid allocates a grid with every tile dark and unflagged.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidDimensionError{Width: width, Height: height}
	}
	g := &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := &g.tiles[g.idx(x, y)]
			t.X, t.Y = x, y
		}
	}
	DebugLog("Created grid %dx%d", width, height)
	return g, nil
}

func (g *Grid) idx(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether (x, y) addresses a tile.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y), or nil outside the grid.
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[g.idx(x, y)]
}

// Tiles returns the tiles in row-major order. The slice aliases the grid.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

func (g *Grid) brightness() []Real {
	out := make([]Real, len(g.tiles))
	for i := range g.tiles {
		out[i] = g.tiles[i].Brightness
	}
	return out
}

// Sum returns the total brightness of the grid.
func (g *Grid) Sum() Real {
	return floats.Sum(g.brightness())
}

// GridStats summarizes a grid after accumulation.
type GridStats struct {
	Min, Max, Mean, StdDev Real
	Lit                    int // tiles with brightness > 0
	Sources                int // tiles flagged as light sources
}

func (g *Grid) Stats() GridStats {
	b := g.brightness()
	s := GridStats{
		Min:  floats.Min(b),
		Max:  floats.Max(b),
		Mean: stat.Mean(b, nil),
	}
	if len(b) > 1 {
		s.StdDev = stat.StdDev(b, nil)
	}
	for i := range g.tiles {
		if g.tiles[i].Brightness > 0 {
			s.Lit++
		}
		if g.tiles[i].IsLightSource {
			s.Sources++
		}
	}
	return s
}
