package tilelight

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// RGB is an 8-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Gray returns the gray level a brightness maps to: round(255*b), half to
// even, clamped to [0,255].
func Gray(brightness Real) uint8 {
	return clampByte(math.RoundToEven(255 * brightness))
}

// RenderMode selects how tiles are written.
type RenderMode int

const (
	// ModeANSI writes each tile as two spaces on a 24-bit background.
	ModeANSI RenderMode = iota
	// ModePlain writes each tile as two characters from a brightness ramp.
	ModePlain
)

// ParseRenderMode maps a --color value to a mode. "auto" picks ANSI when
// isTerminal is true.
func ParseRenderMode(s string, isTerminal bool) (RenderMode, error) {
	switch s {
	case ColorANSI:
		return ModeANSI, nil
	case ColorPlain:
		return ModePlain, nil
	case ColorAuto, "":
		if isTerminal {
			return ModeANSI, nil
		}
		return ModePlain, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want %s, %s or %s)", s, ColorAuto, ColorANSI, ColorPlain)
}

const (
	cellText   = "  "
	resetSGR   = "\033[m"
	plainRamp  = " .:-=+*#%@"
	plainLight = "()"
)

var byteStrings [256]string

func init() {
	for i := 0; i < len(byteStrings); i++ {
		byteStrings[i] = ";" + strconv.Itoa(i)
	}
}

func bgColor(c RGB) string {
	return "\033[48;2" + byteStrings[c.R] + byteStrings[c.G] + byteStrings[c.B] + "m"
}

// Renderer writes a computed grid to a text stream, one line per row.
type Renderer struct {
	Mode      RenderMode
	Highlight RGB

	grays [256]string // cached ANSI cells per gray level
}

func NewRenderer(mode RenderMode) *Renderer {
	return &Renderer{Mode: mode, Highlight: Highlight}
}

// Cell returns the text for one tile.
func (r *Renderer) Cell(t *Tile) string {
	if r.Mode == ModePlain {
		if t.IsLightSource {
			return plainLight
		}
		c := plainRamp[int(Gray(t.Brightness))*(len(plainRamp)-1)/255]
		return string([]byte{c, c})
	}
	if t.IsLightSource {
		return bgColor(r.Highlight) + cellText + resetSGR
	}
	v := Gray(t.Brightness)
	if r.grays[v] == "" {
		r.grays[v] = bgColor(RGB{v, v, v}) + cellText + resetSGR
	}
	return r.grays[v]
}

// Render writes the grid row by row. Light source tiles get the highlight
// color whatever their brightness.
func (r *Renderer) Render(w io.Writer, g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if _, err := bw.WriteString(r.Cell(g.At(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Legend writes the line explaining the highlight color.
func (r *Renderer) Legend(w io.Writer) error {
	legend := LegendText
	if r.Mode == ModePlain {
		legend = plainLight + ": Light point (Random range & intensity)"
	}
	_, err := fmt.Fprintln(w, legend)
	return err
}
