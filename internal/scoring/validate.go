package scoring

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"go-qr-score/internal/decoder"
	"go-qr-score/internal/qrerrors"
)

// MaxDimension is the largest accepted raster width or height.
const MaxDimension = 10_000

// ValidationResult is the terminal output of one validation run.
type ValidationResult struct {
	Score         int               `json:"score"`
	Decodable     bool              `json:"decodable"`
	Content       string            `json:"content,omitempty"`
	Metadata      *decoder.Metadata `json:"metadata,omitempty"`
	StressResults StressResults     `json:"stress_results"`
}

// CheckDimensions guards raster dimensions before any decode work.
func CheckDimensions(width, height int) error {
	if width > MaxDimension || height > MaxDimension {
		return qrerrors.NewDimensionsTooLarge(width, height, MaxDimension)
	}
	if uint64(width)*uint64(height) > math.MaxUint32 {
		return qrerrors.NewDimensionOverflow(width, height)
	}
	return nil
}

// Validate scores a raster from raw encoded bytes (PNG, JPEG).
func Validate(imageBytes []byte, p Params) (*ValidationResult, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, qrerrors.NewImageLoad(err)
	}
	return ValidateImage(img, p)
}

// ValidateImage scores an already-decoded raster: dimension guard, baseline
// decode, stress matrix, weighted score. A baseline decode failure is a hard
// error since scoring has nothing to measure against.
func ValidateImage(img image.Image, p Params) (*ValidationResult, error) {
	bounds := img.Bounds()
	if err := CheckDimensions(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}

	decoded, err := decoder.TryDecode(img)
	if err != nil {
		return nil, err
	}

	stress := RunStressTests(img, p)
	score := CalculateScore(stress, p.Weights)

	return &ValidationResult{
		Score:         score,
		Decodable:     true,
		Content:       decoded.Content,
		Metadata:      decoded.Metadata,
		StressResults: stress,
	}, nil
}
