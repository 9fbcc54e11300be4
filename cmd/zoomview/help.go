// ABOUTME: Help overlay content and markdown rendering via glamour
// ABOUTME: Caches the rendered help text keyed by terminal width

package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpText = `# zoomview

Browse images in the terminal. Click a thumbnail or press enter to
magnify it; the original keeps its place in the layout while zoomed.

## Keys

| Key | Action |
|-----|--------|
| tab / shift+tab | Move focus between images |
| enter / space | Zoom the focused image |
| esc | Close the magnified view |
| / | Fuzzy-pick an image by name |
| ? | Toggle this help |
| q | Quit |

Scrolling or clicking outside the magnified image also closes it.
`

// markdownRenderer wraps glamour with a per-width render cache.
type markdownRenderer struct {
	cache map[int]string
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[int]string)}
}

// Render returns the terminal-styled rendering of md at the given width.
func (r *markdownRenderer) Render(md string, width int) string {
	if cached, ok := r.cache[width]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[width] = rendered
	return rendered
}
