// Package scoring runs the stress-and-score pipeline: it fans a decode
// ensemble out over a fixed matrix of perturbed image variants, measures a
// contrast proxy, and reduces the outcomes into a weighted 0-100 score.
package scoring

// Weights maps each stress test (and the contrast measurement) to its
// relative contribution to the final score. Keys unknown to a stress run are
// ignored at scoring time; stress keys missing here contribute zero weight.
type Weights struct {
	Tests          map[string]int
	ContrastWeight int
}

// DefaultWeights returns the standard weight table. The values sum to 100 so
// the default score reads directly as a percentage.
func DefaultWeights() Weights {
	return Weights{
		Tests: map[string]int{
			"downscale_1x":           1,
			"downscale_2x":           2,
			"downscale_3x":           2,
			"downscale_4x":           2,
			"blur_light":             2,
			"blur_heavy":             1,
			"contrast_up":            2,
			"contrast_down":          2,
			"contrast_strict_up":     1,
			"contrast_strict_down":   1,
			"luminance_up":           2,
			"luminance_down":         2,
			"luminance_strict_up":    1,
			"luminance_strict_down":  1,
			"hue_up":                 1,
			"hue_down":               1,
			"hue_strict_up":          1,
			"hue_strict_down":        1,
			"saturation_up":          1,
			"saturation_down":        1,
			"saturation_strict_up":   1,
			"saturation_strict_down": 1,
		},
		ContrastWeight: 70,
	}
}

// Params configures a scoring run. Every field has a default from
// DefaultParams; overrides are explicit field assignments.
type Params struct {
	// RenderSize is the base rasterization size in pixels for SVG input.
	RenderSize int

	// NativeSize is the image's natural square dimension before any
	// enlargement for rendering. Zero means unknown; downscale targets then
	// fall back to 100.
	NativeSize int

	BlurLightSigma float64
	BlurHeavySigma float64

	// Contrast magnitudes in percent
	Contrast       float64
	ContrastStrict float64

	// Luminance offsets in 8-bit channel units
	Luminance       int
	LuminanceStrict int

	// Hue rotations in degrees
	Hue       float64
	HueStrict float64

	// Saturation scales in percent
	Saturation       float64
	SaturationStrict float64

	Weights Weights
}

// DefaultParams enumerates every scoring option and its default in one place.
func DefaultParams() Params {
	return Params{
		RenderSize:       400,
		NativeSize:       0,
		BlurLightSigma:   1.0,
		BlurHeavySigma:   2.0,
		Contrast:         30.0,
		ContrastStrict:   50.0,
		Luminance:        20,
		LuminanceStrict:  40,
		Hue:              45.0,
		HueStrict:        90.0,
		Saturation:       30.0,
		SaturationStrict: 50.0,
		Weights:          DefaultWeights(),
	}
}
