package scoring

import (
	"image"
	"math"
)

const histogramBins = 1001

// MeasureContrast returns the spread between the 5th and 95th percentile
// relative luminance across the image's pixels, in [0,1]. This is a scan
// robustness proxy, not the WCAG text-contrast ratio.
func MeasureContrast(img image.Image) float64 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0.0
	}

	var histogram [histogramBins]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			lum := relativeLuminance(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
			bin := int(math.Round(lum * 1000))
			if bin > 1000 {
				bin = 1000
			}
			histogram[bin]++
		}
	}

	p5Target := total / 20
	p95Target := total - p5Target

	// Both percentiles resolve from one cumulative walk over the same
	// histogram; on a uniform image they land in the same bin.
	cumulative := 0
	p5 := 0.0
	p95 := 1.0
	for i, count := range histogram {
		prev := cumulative
		cumulative += count
		if prev < p5Target && cumulative >= p5Target {
			p5 = float64(i) / 1000.0
		}
		if prev < p95Target && cumulative >= p95Target {
			p95 = float64(i) / 1000.0
			break
		}
	}

	return p95 - p5
}

// relativeLuminance combines sRGB-linearized channels with BT.709 weights
func relativeLuminance(r, g, b uint8) float64 {
	return 0.2126*srgbLinearize(r) + 0.7152*srgbLinearize(g) + 0.0722*srgbLinearize(b)
}

// srgbLinearize applies the piecewise inverse sRGB transfer function
func srgbLinearize(v uint8) float64 {
	s := float64(v) / 255.0
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}
