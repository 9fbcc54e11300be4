// ABOUTME: Inline style computation: merge precedence and hidden/affordance overrides
// ABOUTME: Pure function of controller state and options, recomputed every render

package zoomview

import "github.com/charmbracelet/lipgloss"

// zoomAffordance is the hint rendered under a zoomable thumbnail, the cell
// equivalent of a zoom-in cursor.
const zoomAffordance = "⌕ zoom"

// InlineStyle is the fully resolved presentation of the inline image for
// one render.
type InlineStyle struct {
	// Frame styles the thumbnail block and caption.
	Frame lipgloss.Style

	// Hidden renders the inline box as blank lines of the same height, so
	// document flow is preserved while the overlay is up.
	Hidden bool

	// Affordance is the clickability hint line; empty when suppressed.
	Affordance string
}

// baseStyle is the built-in lowest-precedence frame style.
func baseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
}

// computeInlineStyle resolves the inline image presentation. Precedence,
// lowest to highest: built-in base, consumer DefaultStyles.Image, the
// per-image style override, then the hidden/affordance overrides computed
// from controller state. The computed overrides always win so the overlay
// and the inline image can never both be visible.
func computeInlineStyle(c *Controller) InlineStyle {
	frame := c.Displayed().Style.
		Inherit(c.opts.DefaultStyles.Image).
		Inherit(baseStyle())

	s := InlineStyle{Frame: frame}

	if c.InlineHidden() {
		s.Hidden = true
		return s
	}
	if c.ZoomEnabled() {
		s.Affordance = zoomAffordance
	}
	return s
}
