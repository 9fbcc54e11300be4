// ABOUTME: Intrinsic image dimension extraction via image.DecodeConfig
// ABOUTME: Registers PNG, JPEG, GIF, and WebP decoders; no full pixel decode

package termimg

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimensions holds the width and height of an image in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// GetDimensions extracts intrinsic width and height from image bytes
// without decoding pixel data. Supports PNG, JPEG, GIF, and WebP.
func GetDimensions(data []byte) (Dimensions, error) {
	if len(data) == 0 {
		return Dimensions{}, fmt.Errorf("empty image data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("reading image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("invalid %s dimensions %dx%d", format, cfg.Width, cfg.Height)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
