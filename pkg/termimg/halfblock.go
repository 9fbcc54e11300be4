// ABOUTME: ANSI half-block fallback renderer for terminals without image protocols
// ABOUTME: Scales pixels into a cell rectangle; ▄ with true-color fg/bg doubles vertical resolution

package termimg

import (
	"bytes"
	"fmt"
	goimage "image"
	"strings"

	"golang.org/x/image/draw"
)

// RenderHalfBlock decodes image bytes and renders them as ANSI art filling
// the given cell rectangle. Each output row covers two pixel rows via the
// lower-half block character. Returns a placeholder box on decode failure.
func RenderHalfBlock(data []byte, rect Rect) []string {
	if rect.Empty() {
		return nil
	}
	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return Placeholder(rect, "image")
	}
	return renderHalfBlock(img, rect)
}

func renderHalfBlock(img goimage.Image, rect Rect) []string {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return Placeholder(rect, "image")
	}

	// One cell column is one pixel wide, one cell row is two pixels tall.
	targetW := rect.Cols
	targetH := rect.Rows * 2

	dst := goimage.NewRGBA(goimage.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	lines := make([]string, 0, rect.Rows)
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := 0; x < targetW; x++ {
			topR, topG, topB := rgbAt(dst, x, y)
			var botR, botG, botB uint8
			if y+1 < targetH {
				botR, botG, botB = rgbAt(dst, x, y+1)
			}
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img goimage.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
