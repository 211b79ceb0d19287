// Package imagecheck inspects uploaded photos without decoding the full bitmap.
package imagecheck

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

// Dimensions of a decoded image header
type Dimensions struct {
	Width  int
	Height int
	Format string
}

// Decode reads only the image header from r
func Decode(r io.Reader) (Dimensions, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Matches reports whether d is exactly width x height
func (d Dimensions) Matches(width, height int) bool {
	return d.Width == width && d.Height == height
}

// Extension returns the canonical file extension for the detected format
func (d Dimensions) Extension() string {
	switch d.Format {
	case "jpeg":
		return ".jpg"
	case "":
		return ""
	default:
		return "." + d.Format
	}
}
