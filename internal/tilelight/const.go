package tilelight

// Defaults used when neither the scene config nor the command line sets a value.
const (
	GridWidth       = 10
	GridHeight      = 10
	MaxLights       = 2  // lights placed per sample by the random placer
	PlaceRoll       = 60 // placement draw is rng.Intn(PlaceRoll)
	PlaceThreshold  = 58 // a draw above this places a light
	IntensityStep   = 1.0
	Samples         = 1
	Intensity       = 0.5
	Range           = 3
	PromptAttempts  = 3
	LegendText      = "YELLOW: Light point (Random range & intensity)"
	ColorAuto       = "auto"
	ColorANSI       = "ansi"
	ColorPlain      = "plain"
	PlacementRandom = "random"
	PlacementFixed  = "fixed"
)
