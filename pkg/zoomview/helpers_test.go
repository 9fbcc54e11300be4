// ABOUTME: Shared test fixtures: in-memory PNG encoding and message plumbing helpers
// ABOUTME: Keeps model/overlay tests free of image file dependencies

package zoomview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// encodePNG produces PNG bytes for a solid w x h image.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

// apply delivers a message to the model and returns the updated Model.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

// loadImage delivers an ImageLoadedMsg for w x h PNG content.
func loadImage(t *testing.T, m Model, src string, w, h int) Model {
	t.Helper()
	m, _ = apply(t, m, ImageLoadedMsg{
		Src:       src,
		Data:      encodePNG(t, w, h),
		Intrinsic: termimg.Dimensions{Width: w, Height: h},
	})
	return m
}
