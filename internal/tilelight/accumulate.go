package tilelight

import (
	"math"
)

// box is an inclusive tile rectangle; empty when minX > maxX or minY > maxY.
type box struct {
	minX, maxX, minY, maxY int
}

func (b box) empty() bool { return b.minX > b.maxX || b.minY > b.maxY }

// bounds returns the tiles a light can reach, clipped to the grid.
// Clamping happens in float space so a far-away light cannot overflow int.
func (l Light) bounds(width, height int) box {
	lo := func(c Real) Real { return math.Max(math.Floor(c-l.Range), 0) }
	hi := func(c Real, n int) Real { return math.Min(math.Ceil(c+l.Range), Real(n-1)) }
	minX, maxX := lo(l.X), hi(l.X, width)
	minY, maxY := lo(l.Y), hi(l.Y, height)
	if minX > maxX || minY > maxY {
		return box{0, -1, 0, -1}
	}
	return box{int(minX), int(maxX), int(minY), int(maxY)}
}

// contribution returns what the light adds to tile (x, y) and whether the
// tile is inside the light's range at all. The source tile itself gets 0.
func (l Light) contribution(x, y int) (Real, bool) {
	dx := l.X - Real(x)
	dy := l.Y - Real(y)
	d := math.Sqrt(dx*dx + dy*dy)
	if d > l.Range {
		return 0, false
	}
	if d == 0 {
		return 0, true
	}
	return l.Intensity / (d * d), true
}

// Accumulate adds every light's inverse-square contribution to the tiles
// within its range. Lights are applied in slice order and never modified.
// All lights are validated before the grid is touched.
func Accumulate(g *Grid, lights []Light) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := validateLights(lights); err != nil {
		return err
	}
	var st passStats
	for i := range lights {
		applyLight(g, &lights[i], 0, g.Height-1, &st)
	}
	if Debug {
		logPass("serial", st)
	}
	return nil
}

// applyLight deposits one light into rows [rowLo, rowHi] of the grid.
func applyLight(g *Grid, l *Light, rowLo, rowHi int, st *passStats) {
	b := l.bounds(g.Width, g.Height)
	b.minY = imax(b.minY, rowLo)
	b.maxY = imin(b.maxY, rowHi)
	if b.empty() {
		st.Clipped++
		return
	}
	for y := b.minY; y <= b.maxY; y++ {
		row := g.tiles[y*g.Width : (y+1)*g.Width]
		for x := b.minX; x <= b.maxX; x++ {
			st.Scanned++
			c, ok := l.contribution(x, y)
			if !ok {
				st.OutOfRange++
				continue
			}
			t := &row[x]
			t.Brightness += c
			if c > 0 {
				st.Lit++
			}
			if l.At(x, y) {
				t.IsLightSource = true
				st.Sources++
			}
		}
	}
}
