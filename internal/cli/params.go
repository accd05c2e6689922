package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"go-qr-score/internal/scoring"
)

// loadParams builds scoring parameters from defaults overlaid with config
// file and environment values.
func loadParams() scoring.Params {
	p := scoring.DefaultParams()

	if viper.IsSet("render_size") {
		p.RenderSize = viper.GetInt("render_size")
	}
	if viper.IsSet("blur_light_sigma") {
		p.BlurLightSigma = viper.GetFloat64("blur_light_sigma")
	}
	if viper.IsSet("blur_heavy_sigma") {
		p.BlurHeavySigma = viper.GetFloat64("blur_heavy_sigma")
	}
	if viper.IsSet("contrast") {
		p.Contrast = viper.GetFloat64("contrast")
	}
	if viper.IsSet("contrast_strict") {
		p.ContrastStrict = viper.GetFloat64("contrast_strict")
	}
	if viper.IsSet("luminance") {
		p.Luminance = viper.GetInt("luminance")
	}
	if viper.IsSet("luminance_strict") {
		p.LuminanceStrict = viper.GetInt("luminance_strict")
	}
	if viper.IsSet("hue") {
		p.Hue = viper.GetFloat64("hue")
	}
	if viper.IsSet("hue_strict") {
		p.HueStrict = viper.GetFloat64("hue_strict")
	}
	if viper.IsSet("saturation") {
		p.Saturation = viper.GetFloat64("saturation")
	}
	if viper.IsSet("saturation_strict") {
		p.SaturationStrict = viper.GetFloat64("saturation_strict")
	}

	loadWeights(&p.Weights)
	return p
}

// loadWeights overlays [weights] table entries. Unknown keys are kept (the
// scorer ignores them) but warned about, since they are almost always typos.
func loadWeights(w *scoring.Weights) {
	raw := viper.GetStringMap("weights")
	if len(raw) == 0 {
		return
	}

	known := make(map[string]struct{})
	for _, name := range scoring.VariantNames() {
		known[name] = struct{}{}
	}

	for key := range raw {
		if key == "contrast_ratio" {
			w.ContrastWeight = viper.GetInt("weights.contrast_ratio")
			continue
		}
		if _, ok := known[key]; !ok {
			fmt.Fprintf(os.Stderr, "Warning: weight key %q is not a known stress test\n", key)
		}
		w.Tests[key] = viper.GetInt("weights." + key)
	}
}
