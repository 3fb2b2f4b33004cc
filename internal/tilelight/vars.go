package tilelight

import (
	"io"
	"os"
)

type Real = float64

var (
	Debug              = false     // set to true for verbose debug output
	DebugOut io.Writer = os.Stderr // where DebugLog writes
	// Highlight is the background used for tiles holding a light source.
	Highlight = RGB{255, 211, 67}
)
