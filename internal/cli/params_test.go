package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"go-qr-score/internal/scoring"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadParamsDefaultsWhenNothingConfigured(t *testing.T) {
	resetViper(t)

	p := loadParams()
	want := scoring.DefaultParams()

	if p.RenderSize != want.RenderSize {
		t.Errorf("Expected render size %d, got %d", want.RenderSize, p.RenderSize)
	}
	if p.BlurLightSigma != want.BlurLightSigma || p.BlurHeavySigma != want.BlurHeavySigma {
		t.Errorf("Unexpected blur sigmas: %f, %f", p.BlurLightSigma, p.BlurHeavySigma)
	}
	if p.Weights.ContrastWeight != want.Weights.ContrastWeight {
		t.Errorf("Expected contrast weight %d, got %d", want.Weights.ContrastWeight, p.Weights.ContrastWeight)
	}
}

func TestLoadParamsOverlaysConfiguredValues(t *testing.T) {
	resetViper(t)
	viper.Set("render_size", 800)
	viper.Set("contrast", 25.0)
	viper.Set("luminance_strict", 60)

	p := loadParams()

	if p.RenderSize != 800 {
		t.Errorf("Expected render size 800, got %d", p.RenderSize)
	}
	if p.Contrast != 25.0 {
		t.Errorf("Expected contrast 25.0, got %f", p.Contrast)
	}
	if p.LuminanceStrict != 60 {
		t.Errorf("Expected strict luminance 60, got %d", p.LuminanceStrict)
	}
	// untouched fields keep their defaults
	if p.ContrastStrict != scoring.DefaultParams().ContrastStrict {
		t.Errorf("Strict contrast should stay at default, got %f", p.ContrastStrict)
	}
}

func TestLoadParamsFromTOMLFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "qrscore.toml")
	content := `
render_size = 512
blur_heavy_sigma = 3.5

[weights]
contrast_ratio = 50
downscale_1x = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config fixture: %v", err)
	}

	p := loadParams()

	if p.RenderSize != 512 {
		t.Errorf("Expected render size 512, got %d", p.RenderSize)
	}
	if p.BlurHeavySigma != 3.5 {
		t.Errorf("Expected heavy blur sigma 3.5, got %f", p.BlurHeavySigma)
	}
	if p.Weights.ContrastWeight != 50 {
		t.Errorf("Expected contrast weight 50, got %d", p.Weights.ContrastWeight)
	}
	if p.Weights.Tests["downscale_1x"] != 10 {
		t.Errorf("Expected downscale_1x weight 10, got %d", p.Weights.Tests["downscale_1x"])
	}
	// keys absent from the file keep their default weights
	if p.Weights.Tests["blur_light"] != scoring.DefaultWeights().Tests["blur_light"] {
		t.Errorf("Unlisted weight should stay at default, got %d", p.Weights.Tests["blur_light"])
	}
}

func TestLoadWeightsKeepsUnknownKeys(t *testing.T) {
	resetViper(t)
	viper.Set("weights", map[string]interface{}{"mystery_test": 5})

	p := loadParams()

	if p.Weights.Tests["mystery_test"] != 5 {
		t.Errorf("Unknown weight keys should still be stored, got %d", p.Weights.Tests["mystery_test"])
	}
}
