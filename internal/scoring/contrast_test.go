package scoring

import (
	"image"
	"image/color"
	"testing"
)

func uniformImage(c color.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func checkerboardImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestContrastUniformImageIsZero(t *testing.T) {
	for _, c := range []color.Color{color.Black, color.White, color.RGBA{R: 128, G: 128, B: 128, A: 255}} {
		if got := MeasureContrast(uniformImage(c, 50)); got != 0.0 {
			t.Errorf("Uniform image should have zero contrast, got %f for %v", got, c)
		}
	}
}

func TestContrastCheckerboardIsNearOne(t *testing.T) {
	got := MeasureContrast(checkerboardImage(100))
	if got < 0.9 {
		t.Errorf("Black/white checkerboard should measure near 1.0, got %f", got)
	}
}

func TestContrastEmptyImageIsZero(t *testing.T) {
	if got := MeasureContrast(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0.0 {
		t.Errorf("Empty image should measure 0.0, got %f", got)
	}
}

func TestContrastIgnoresOutlierTails(t *testing.T) {
	// 2% white outliers on a black field sit below the 5th/95th percentile
	// window and must not widen the measured spread.
	img := uniformImage(color.Black, 100)
	for i := 0; i < 200; i++ {
		img.Set(i%100, i/100, color.White)
	}
	if got := MeasureContrast(img); got > 0.01 {
		t.Errorf("Outlier pixels should be trimmed by the percentile walk, got %f", got)
	}
}

func TestContrastGrayPairIsBetween(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 50 {
				img.Set(x, y, color.RGBA{R: 64, G: 64, B: 64, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 192, G: 192, B: 192, A: 255})
			}
		}
	}
	got := MeasureContrast(img)
	if got <= 0.1 || got >= 0.9 {
		t.Errorf("Mid-gray split should measure between the extremes, got %f", got)
	}
}

func TestRelativeLuminanceEndpoints(t *testing.T) {
	if got := relativeLuminance(0, 0, 0); got != 0.0 {
		t.Errorf("Black luminance should be 0.0, got %f", got)
	}
	if got := relativeLuminance(255, 255, 255); got < 0.999 || got > 1.001 {
		t.Errorf("White luminance should be 1.0, got %f", got)
	}
}

func TestRelativeLuminanceGreenDominates(t *testing.T) {
	green := relativeLuminance(0, 255, 0)
	red := relativeLuminance(255, 0, 0)
	blue := relativeLuminance(0, 0, 255)
	if green <= red || red <= blue {
		t.Errorf("Expected green > red > blue, got g=%f r=%f b=%f", green, red, blue)
	}
}
