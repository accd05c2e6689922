// Package render rasterizes SVG documents for scoring. The rasterizer is an
// opaque collaborator: it either produces pixels at the requested size or
// fails, and the scoring core never looks inside it.
package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"go-qr-score/internal/qrerrors"
	"go-qr-score/internal/scoring"
)

// ParseSVG parses an SVG document, reporting malformed input as InvalidSvg.
func ParseSVG(data []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, qrerrors.NewInvalidSVG(err)
	}
	return icon, nil
}

// NativeSize returns the document's natural square dimension: the ceiling of
// its larger viewbox extent.
func NativeSize(icon *oksvg.SvgIcon) int {
	larger := icon.ViewBox.W
	if icon.ViewBox.H > larger {
		larger = icon.ViewBox.H
	}
	return int(math.Ceil(larger))
}

// Rasterize renders the document into a size x size raster, scaled uniformly
// to fit. Documents without their own background render onto white.
func Rasterize(icon *oksvg.SvgIcon, size int) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = qrerrors.NewRenderFailed()
		}
	}()

	larger := icon.ViewBox.W
	if icon.ViewBox.H > larger {
		larger = icon.ViewBox.H
	}
	if size <= 0 || larger <= 0 {
		return nil, qrerrors.NewRenderFailed()
	}
	scale := float64(size) / larger

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(rgba, rgba.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, icon.ViewBox.W*scale, icon.ViewBox.H*scale)
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return rgba, nil
}

// RasterizeZoom renders at the document's own dimensions scaled by zoom,
// used by the standalone render mode.
func RasterizeZoom(data []byte, zoom float64) (image.Image, error) {
	icon, err := ParseSVG(data)
	if err != nil {
		return nil, err
	}
	if zoom <= 0 {
		zoom = 1
	}

	w := int(math.Ceil(icon.ViewBox.W * zoom))
	h := int(math.Ceil(icon.ViewBox.H * zoom))
	if w <= 0 || h <= 0 {
		return nil, qrerrors.NewRenderFailed()
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, icon.ViewBox.W*zoom, icon.ViewBox.H*zoom)
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

// ScoreSVG runs the full vector pipeline: parse, learn the native size,
// rasterize at max(render size, native), validate. The validation call sits
// behind a fault barrier so a crash in a decoder surfaces as DecodeFailed
// rather than an unwind.
func ScoreSVG(data []byte, p scoring.Params) (result *scoring.ValidationResult, err error) {
	icon, err := ParseSVG(data)
	if err != nil {
		return nil, err
	}

	p.NativeSize = NativeSize(icon)
	size := p.RenderSize
	if p.NativeSize > size {
		size = p.NativeSize
	}

	img, err := Rasterize(icon, size)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = qrerrors.NewDecodeFailed()
		}
	}()
	return scoring.ValidateImage(img, p)
}

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
