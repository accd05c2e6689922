package scoring

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
)

// Variant is one deterministically-perturbed copy of the source image
type Variant struct {
	Name  string
	Image image.Image
}

type variantSpec struct {
	name  string
	apply func(img image.Image, p Params) image.Image
}

// defaultNativeSize is assumed when the caller never learned the source's
// natural dimension (raster input with no vector document behind it).
const defaultNativeSize = 100

func nativeSize(p Params) int {
	if p.NativeSize > 0 {
		return p.NativeSize
	}
	return defaultNativeSize
}

// variantSpecs is the fixed, closed 22-entry perturbation vocabulary. Weight
// tables and stress results key by these exact names.
func variantSpecs() []variantSpec {
	return []variantSpec{
		{"downscale_1x", func(img image.Image, p Params) image.Image { return resizeTo(img, nativeSize(p)) }},
		{"downscale_2x", func(img image.Image, p Params) image.Image { return resizeTo(img, nativeSize(p)*2) }},
		{"downscale_3x", func(img image.Image, p Params) image.Image { return resizeTo(img, nativeSize(p)*3) }},
		{"downscale_4x", func(img image.Image, p Params) image.Image { return resizeTo(img, nativeSize(p)*4) }},
		{"blur_light", func(img image.Image, p Params) image.Image { return blur.Gaussian(img, p.BlurLightSigma) }},
		{"blur_heavy", func(img image.Image, p Params) image.Image { return blur.Gaussian(img, p.BlurHeavySigma) }},
		{"contrast_up", func(img image.Image, p Params) image.Image { return adjust.Contrast(img, p.Contrast/100) }},
		{"contrast_down", func(img image.Image, p Params) image.Image { return adjust.Contrast(img, -p.Contrast/100) }},
		{"contrast_strict_up", func(img image.Image, p Params) image.Image { return adjust.Contrast(img, p.ContrastStrict/100) }},
		{"contrast_strict_down", func(img image.Image, p Params) image.Image { return adjust.Contrast(img, -p.ContrastStrict/100) }},
		{"luminance_up", func(img image.Image, p Params) image.Image { return adjust.Brightness(img, float64(p.Luminance)/255) }},
		{"luminance_down", func(img image.Image, p Params) image.Image { return adjust.Brightness(img, -float64(p.Luminance)/255) }},
		{"luminance_strict_up", func(img image.Image, p Params) image.Image { return adjust.Brightness(img, float64(p.LuminanceStrict)/255) }},
		{"luminance_strict_down", func(img image.Image, p Params) image.Image { return adjust.Brightness(img, -float64(p.LuminanceStrict)/255) }},
		{"hue_up", func(img image.Image, p Params) image.Image { return adjust.Hue(img, int(p.Hue)) }},
		{"hue_down", func(img image.Image, p Params) image.Image { return adjust.Hue(img, -int(p.Hue)) }},
		{"hue_strict_up", func(img image.Image, p Params) image.Image { return adjust.Hue(img, int(p.HueStrict)) }},
		{"hue_strict_down", func(img image.Image, p Params) image.Image { return adjust.Hue(img, -int(p.HueStrict)) }},
		{"saturation_up", func(img image.Image, p Params) image.Image { return adjustSaturation(img, p.Saturation) }},
		{"saturation_down", func(img image.Image, p Params) image.Image { return adjustSaturation(img, -p.Saturation) }},
		{"saturation_strict_up", func(img image.Image, p Params) image.Image { return adjustSaturation(img, p.SaturationStrict) }},
		{"saturation_strict_down", func(img image.Image, p Params) image.Image { return adjustSaturation(img, -p.SaturationStrict) }},
	}
}

// VariantNames returns the fixed variant vocabulary in generation order.
func VariantNames() []string {
	specs := variantSpecs()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.name
	}
	return names
}

// GenerateVariants produces the full ordered variant set for one source
// image. Generation is pure: identical (img, p) inputs yield bit-identical
// variants.
func GenerateVariants(img image.Image, p Params) []Variant {
	specs := variantSpecs()
	variants := make([]Variant, len(specs))
	for i, s := range specs {
		variants[i] = Variant{Name: s.name, Image: s.apply(img, p)}
	}
	return variants
}

// resizeTo shrinks the image so its longest side equals size, preserving
// aspect ratio. Images already at or below the target pass through untouched.
func resizeTo(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	maxDim := w
	if h > maxDim {
		maxDim = h
	}
	if maxDim <= size || maxDim == 0 {
		return img
	}

	scale := float64(size) / float64(maxDim)
	tw := int(math.Round(float64(w) * scale))
	th := int(math.Round(float64(h) * scale))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return transform.Resize(img, tw, th, transform.Linear)
}

// adjustSaturation moves each pixel toward (amount < 0) or away from
// (amount > 0) its luminance-weighted gray value by 1 + amount/100, clamping
// per channel.
func adjustSaturation(img image.Image, amount float64) image.Image {
	bounds := img.Bounds()
	factor := 1.0 + amount/100.0
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			gray := 0.299*r + 0.587*g + 0.114*b
			i := out.PixOffset(x, y)
			out.Pix[i+0] = clampChannel(gray + (r-gray)*factor)
			out.Pix[i+1] = clampChannel(gray + (g-gray)*factor)
			out.Pix[i+2] = clampChannel(gray + (b-gray)*factor)
			out.Pix[i+3] = 255
		}
	}
	return out
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
