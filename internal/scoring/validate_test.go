package scoring

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	qrgen "github.com/skip2/go-qrcode"

	"go-qr-score/internal/qrerrors"
)

func qrPNGFixture(t *testing.T, content string, size int) []byte {
	t.Helper()
	data, err := qrgen.Encode(content, qrgen.Medium, size)
	if err != nil {
		t.Fatalf("Failed to encode QR fixture: %v", err)
	}
	return data
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestValidateCleanCode(t *testing.T) {
	data := qrPNGFixture(t, "https://example.com", 256)

	result, err := Validate(data, DefaultParams())
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !result.Decodable {
		t.Error("Clean code should be decodable")
	}
	if result.Content != "https://example.com" {
		t.Errorf("Expected decoded content %q, got %q", "https://example.com", result.Content)
	}
	if result.Metadata == nil {
		t.Fatal("Expected error-correction metadata")
	}
	if result.Score < 70 || result.Score > 100 {
		t.Errorf("Clean high-contrast code should score at least the contrast weight, got %d", result.Score)
	}
	if len(result.StressResults.Tests) != len(VariantNames()) {
		t.Errorf("Expected %d stress outcomes, got %d", len(VariantNames()), len(result.StressResults.Tests))
	}
}

func TestValidateRejectsGarbageBytes(t *testing.T) {
	_, err := Validate([]byte("definitely not an image"), DefaultParams())
	if err == nil {
		t.Fatal("Expected an error for non-image bytes")
	}
	if !qrerrors.IsKind(err, qrerrors.KindImageLoad) {
		t.Errorf("Expected image_load error, got %v", err)
	}
}

func TestValidateBlankImageIsDecodeFailure(t *testing.T) {
	data := pngBytes(t, uniformImage(color.White, 64))

	_, err := Validate(data, DefaultParams())
	if err == nil {
		t.Fatal("Expected an error for an image with no code in it")
	}
	if !qrerrors.IsKind(err, qrerrors.KindDecodeFailed) {
		t.Errorf("Expected decode_failed error, got %v", err)
	}
}

func TestValidateTinyImageIsDecodeFailureNotDimensionError(t *testing.T) {
	data := pngBytes(t, uniformImage(color.White, 1))

	_, err := Validate(data, DefaultParams())
	if !qrerrors.IsKind(err, qrerrors.KindDecodeFailed) {
		t.Errorf("A 1x1 image should fail as undecodable, got %v", err)
	}
}

func TestCheckDimensionsAcceptsMaximum(t *testing.T) {
	if err := CheckDimensions(MaxDimension, MaxDimension); err != nil {
		t.Errorf("Maximum dimensions should be accepted, got %v", err)
	}
}

func TestCheckDimensionsRejectsOversize(t *testing.T) {
	err := CheckDimensions(MaxDimension+1, 100)
	if !qrerrors.IsKind(err, qrerrors.KindDimensionsTooLarge) {
		t.Fatalf("Expected dimensions_too_large, got %v", err)
	}

	qErr := err.(*qrerrors.Error)
	if qErr.Width != MaxDimension+1 || qErr.Height != 100 || qErr.MaxDimension != MaxDimension {
		t.Errorf("Error should carry the offending dimensions, got %+v", qErr)
	}

	if err := CheckDimensions(100, MaxDimension+1); !qrerrors.IsKind(err, qrerrors.KindDimensionsTooLarge) {
		t.Errorf("Height guard should match width guard, got %v", err)
	}
}

func TestCheckDimensionsOversizeWinsOverOverflow(t *testing.T) {
	// Both guards trip here; the per-axis bound is reported first.
	err := CheckDimensions(1<<20, 1<<20)
	if !qrerrors.IsKind(err, qrerrors.KindDimensionsTooLarge) {
		t.Errorf("Expected dimensions_too_large to take precedence, got %v", err)
	}
}
