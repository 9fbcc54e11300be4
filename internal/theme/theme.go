// ABOUTME: Semantic viewer theme types: Palette and Theme
// ABOUTME: Palette maps viewer roles to lipgloss colors; Styles bridges to widget styles

package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/zoomview-go/pkg/zoomview"
)

// Palette holds all semantic colors for a viewer theme.
type Palette struct {
	// Inline widget
	Border     lipgloss.Color
	Caption    lipgloss.Color
	Affordance lipgloss.Color

	// Overlay
	OverlayBorder lipgloss.Color
	OverlayTitle  lipgloss.Color
	Placeholder   lipgloss.Color

	// Chrome around the widgets
	Heading  lipgloss.Color
	Focus    lipgloss.Color
	Muted    lipgloss.Color
	ErrorFg  lipgloss.Color
	HelpText lipgloss.Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Border:     lipgloss.Color("240"),
		Caption:    lipgloss.Color("252"),
		Affordance: lipgloss.Color("39"),

		OverlayBorder: lipgloss.Color("63"),
		OverlayTitle:  lipgloss.Color("255"),
		Placeholder:   lipgloss.Color("244"),

		Heading:  lipgloss.Color("205"),
		Focus:    lipgloss.Color("212"),
		Muted:    lipgloss.Color("241"),
		ErrorFg:  lipgloss.Color("196"),
		HelpText: lipgloss.Color("245"),
	}
}

// Styles converts the palette into the widget style set consumed by the
// zoom widgets.
func (p Palette) Styles() zoomview.DefaultStyles {
	return zoomview.DefaultStyles{
		ZoomContainer: lipgloss.NewStyle(),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.OverlayBorder),
		Image: lipgloss.NewStyle().
			BorderForeground(p.Border).
			Foreground(p.Caption),
		ZoomImage: lipgloss.NewStyle().
			Foreground(p.OverlayTitle),
	}
}
