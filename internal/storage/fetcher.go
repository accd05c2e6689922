// Package storage fetches source documents (SVG or raster bytes) for the
// scoring API. The scorer needs raw encoded bytes, not decoded pixels: the
// image-load boundary belongs to the scoring core.
package storage

import "context"

// ByteFetcher retrieves a document's raw bytes from a URL.
type ByteFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
