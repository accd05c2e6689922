// Package decoder extracts QR payloads through an ensemble of independent
// decoding strategies, tried in a fixed priority order with fault isolation
// around each attempt.
package decoder

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/liyue201/goqr"
	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"

	"go-qr-score/internal/qrerrors"
)

// rawDecode is a single strategy's outcome before metadata defaulting
type rawDecode struct {
	content         string
	errorCorrection ErrorCorrection // empty when the decoder reported none
}

func (r rawDecode) intoResult() *Result {
	ec := r.errorCorrection
	if ec == "" {
		ec = ECLevelM
	}
	return &Result{
		Content:  r.content,
		Metadata: &Metadata{ErrorCorrection: ec},
	}
}

type binarizerKind int

const (
	hybridBinarizer binarizerKind = iota
	globalHistogramBinarizer
)

// TryDecode attempts all strategies in priority order: zxing with hybrid
// binarization, zxing with global-histogram binarization, goqr on the
// luminance image, goqr on the inverted luminance image. The first success
// wins; strategy choice is not observable on success.
func TryDecode(img image.Image) (*Result, error) {
	gray := toGray(img)
	inverted := invertGray(gray)

	attempts := []func() (rawDecode, error){
		func() (rawDecode, error) { return decodeZXing(gray, inverted, hybridBinarizer) },
		func() (rawDecode, error) { return decodeZXing(gray, inverted, globalHistogramBinarizer) },
		func() (rawDecode, error) { return decodeGoQR(gray) },
		func() (rawDecode, error) { return decodeGoQR(inverted) },
	}

	for _, attempt := range attempts {
		if raw, err := runIsolated(attempt); err == nil {
			return raw.intoResult(), nil
		}
	}
	return nil, qrerrors.NewDecodeFailed()
}

// DecodeBytes decodes a raster from raw encoded bytes (PNG, JPEG)
func DecodeBytes(data []byte) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, qrerrors.NewImageLoad(err)
	}
	return TryDecode(img)
}

// runIsolated converts any panic inside a single attempt into that attempt's
// failure. A crash in one strategy must never abort the ensemble.
func runIsolated(attempt func() (rawDecode, error)) (raw rawDecode, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = rawDecode{}
			err = qrerrors.NewDecodeFailed()
		}
	}()
	return attempt()
}

// decodeZXing runs the zxing QR reader with the given binarizer, retrying on
// the inverted image to cover inverted-polarity symbols.
func decodeZXing(gray, inverted *image.Gray, kind binarizerKind) (rawDecode, error) {
	if raw, err := decodeZXingOnce(gray, kind); err == nil {
		return raw, nil
	}
	return decodeZXingOnce(inverted, kind)
}

func decodeZXingOnce(gray *image.Gray, kind binarizerKind) (rawDecode, error) {
	source := gozxing.NewLuminanceSourceFromImage(gray)

	var bitmap *gozxing.BinaryBitmap
	var err error
	switch kind {
	case globalHistogramBinarizer:
		bitmap, err = gozxing.NewBinaryBitmap(gozxing.NewGlobalHistgramBinarizer(source))
	default:
		bitmap, err = gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	}
	if err != nil {
		return rawDecode{}, err
	}

	reader := zxqr.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := reader.Decode(bitmap, hints)
	if err != nil {
		return rawDecode{}, err
	}

	raw := rawDecode{content: result.GetText()}
	if v, ok := result.GetResultMetadata()[gozxing.ResultMetadataType_ERROR_CORRECTION_LEVEL]; ok {
		if s, ok := v.(string); ok {
			if ec, ok := ParseErrorCorrection(s); ok {
				raw.errorCorrection = ec
			}
		}
	}
	return raw, nil
}

func decodeGoQR(gray *image.Gray) (rawDecode, error) {
	codes, err := goqr.Recognize(gray)
	if err != nil {
		return rawDecode{}, err
	}
	if len(codes) == 0 {
		return rawDecode{}, qrerrors.NewDecodeFailed()
	}

	code := codes[0]
	return rawDecode{
		content:         string(code.Payload),
		errorCorrection: errorCorrectionFromFormatBits(int(code.EccLevel)),
	}, nil
}

// toGray converts any image to an 8-bit luminance image
func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// invertGray returns a pixel-inverted copy of the luminance image
func invertGray(gray *image.Gray) *image.Gray {
	inverted := image.NewGray(gray.Bounds())
	for i, v := range gray.Pix {
		inverted.Pix[i] = 255 - v
	}
	return inverted
}
