// ABOUTME: Caption shaping for alt text: NFC normalization, grapheme-aware truncation
// ABOUTME: Display width measured per grapheme cluster so emoji and combining marks count once

package zoomview

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// caption normalizes alt text and truncates it to maxWidth display cells,
// appending an ellipsis when anything was cut. Grapheme clusters are kept
// whole so truncation never splits a combined character.
func caption(alt string, maxWidth int) string {
	if maxWidth <= 0 || alt == "" {
		return ""
	}
	alt = norm.NFC.String(strings.TrimSpace(alt))

	if captionWidth(alt) <= maxWidth {
		return alt
	}

	budget := maxWidth - 1 // reserve a cell for the ellipsis
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(alt)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + "…"
}

// captionWidth returns the display width of s in cells, summed over
// grapheme clusters.
func captionWidth(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		total += runewidth.StringWidth(g.Str())
	}
	return total
}
