package qrerrors

import (
	"fmt"
	"net/http"
)

// Kind identifies the category of a scoring error
type Kind string

const (
	KindImageLoad          Kind = "image_load"
	KindDecodeFailed       Kind = "decode_failed"
	KindInvalidSVG         Kind = "invalid_svg"
	KindRenderFailed       Kind = "render_failed"
	KindDimensionsTooLarge Kind = "dimensions_too_large"
	KindDimensionOverflow  Kind = "dimension_overflow"
)

// Error is a structured scoring error carrying its kind and HTTP status
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Cause      error  `json:"-"`

	// Dimension guard details, set only for the dimension kinds
	Width        int `json:"width,omitempty"`
	Height       int `json:"height,omitempty"`
	MaxDimension int `json:"max_dimension,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewImageLoad reports input bytes that are not a decodable raster
func NewImageLoad(cause error) *Error {
	return &Error{
		Kind:       KindImageLoad,
		Message:    "failed to load image",
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewDecodeFailed reports that no decode strategy succeeded. It carries no
// diagnostic detail: the decoders do not explain why they failed.
func NewDecodeFailed() *Error {
	return &Error{
		Kind:       KindDecodeFailed,
		Message:    "no QR code found in image",
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewInvalidSVG reports a malformed source vector document
func NewInvalidSVG(cause error) *Error {
	return &Error{
		Kind:       KindInvalidSVG,
		Message:    "invalid SVG",
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewRenderFailed reports that rasterization produced no output
func NewRenderFailed() *Error {
	return &Error{
		Kind:       KindRenderFailed,
		Message:    "failed to render SVG to raster",
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewDimensionsTooLarge reports a raster exceeding the configured maximum
func NewDimensionsTooLarge(width, height, maxDimension int) *Error {
	return &Error{
		Kind:         KindDimensionsTooLarge,
		Message:      fmt.Sprintf("image too large: %dx%d exceeds maximum %dx%d", width, height, maxDimension, maxDimension),
		StatusCode:   http.StatusRequestEntityTooLarge,
		Width:        width,
		Height:       height,
		MaxDimension: maxDimension,
	}
}

// NewDimensionOverflow reports a width*height product that overflows uint32
func NewDimensionOverflow(width, height int) *Error {
	return &Error{
		Kind:       KindDimensionOverflow,
		Message:    fmt.Sprintf("dimension overflow: %d x %d overflows", width, height),
		StatusCode: http.StatusRequestEntityTooLarge,
		Width:      width,
		Height:     height,
	}
}

// IsKind checks if the error is of a specific kind
func IsKind(err error, kind Kind) bool {
	if qErr, ok := err.(*Error); ok {
		return qErr.Kind == kind
	}
	return false
}

// GetStatusCode extracts the HTTP status code from an error
func GetStatusCode(err error) int {
	if qErr, ok := err.(*Error); ok {
		return qErr.StatusCode
	}
	return http.StatusInternalServerError
}
