package tilelight

import (
	"errors"
	"fmt"
)

var (
	ErrNilGrid = errors.New("grid is nil")
	ErrNoInput = errors.New("no valid input")
)

// InvalidDimensionError is returned when a grid is requested with a
// non-positive width or height.
type InvalidDimensionError struct {
	Width, Height int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("grid dimensions must be positive, got %dx%d", e.Width, e.Height)
}

// InvalidLightError describes the first bad field of a light.
// Index is the light's position in the list passed to Accumulate, or -1.
type InvalidLightError struct {
	Index int
	Field string
	Value Real
}

func (e *InvalidLightError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid light: %s=%v", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid light #%d: %s=%v", e.Index, e.Field, e.Value)
}
