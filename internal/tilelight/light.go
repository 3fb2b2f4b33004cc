package tilelight

// Light is a point source on the grid plane.
// X and Y are continuous; a light whose position equals a tile's
// integer coordinates marks that tile as a light source.
type Light struct {
	X, Y      Real
	Intensity Real
	Range     Real // radius of influence, in tiles
}

// NewLight builds a light and validates it.
func NewLight(x, y, intensity, rng Real) (Light, error) {
	l := Light{X: x, Y: y, Intensity: intensity, Range: rng}
	if err := l.Validate(); err != nil {
		return Light{}, err
	}
	return l, nil
}

// Validate requires finite coordinates and a finite, non-negative
// intensity and range.
func (l Light) Validate() error {
	return l.validate(-1)
}

func (l Light) validate(index int) error {
	switch {
	case !isFinite(l.X):
		return &InvalidLightError{Index: index, Field: "x", Value: l.X}
	case !isFinite(l.Y):
		return &InvalidLightError{Index: index, Field: "y", Value: l.Y}
	case !isFinite(l.Intensity) || l.Intensity < 0:
		return &InvalidLightError{Index: index, Field: "intensity", Value: l.Intensity}
	case !isFinite(l.Range) || l.Range < 0:
		return &InvalidLightError{Index: index, Field: "range", Value: l.Range}
	}
	return nil
}

// At reports whether the light sits exactly on tile (x, y).
func (l Light) At(x, y int) bool {
	return l.X == Real(x) && l.Y == Real(y)
}

func validateLights(lights []Light) error {
	for i, l := range lights {
		if err := l.validate(i); err != nil {
			return err
		}
	}
	return nil
}
