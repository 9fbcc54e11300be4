// ABOUTME: Configuration surface for the zoom widget: image descriptors, control mode, callbacks
// ABOUTME: normalize() fills defaults so the controller never checks for nil handlers

package zoomview

import "github.com/charmbracelet/lipgloss"

// DefaultZoomMargin is the number of cells kept free between the magnified
// overlay and every viewport edge when Options.ZoomMargin is zero.
const DefaultZoomMargin = 4

// Image describes an image rendered inline or magnified.
type Image struct {
	Src   string         // source path or identifier; required for the inline image
	Alt   string         // caption text shown under the rendering
	Class string         // caller-chosen label, carried into debug log lines
	Style lipgloss.Style // per-image style override, merged per computeInlineStyle
}

// Event describes a single activation request.
// Pointer activations carry cell coordinates; keyboard activations carry
// the key name with X and Y set to -1.
type Event struct {
	X, Y int
	Key  string
}

// DefaultStyles holds consumer-supplied style-merge inputs for each of the
// widget's visual regions.
type DefaultStyles struct {
	ZoomContainer lipgloss.Style
	Overlay       lipgloss.Style
	Image         lipgloss.Style
	ZoomImage     lipgloss.Style
}

// Options configures a zoom widget.
//
// The presence of IsZoomed fixes the control mode for the widget's entire
// lifetime: nil means uncontrolled (the widget owns its zoom state), non-nil
// means controlled (the caller owns it and drives changes via SetZoomedMsg).
type Options struct {
	// Image is the inline image descriptor. Src is required.
	Image Image

	// ZoomImage optionally overrides the magnified presentation. When nil
	// the overlay derives the magnified rendering from Image.
	ZoomImage *Image

	// IsZoomed selects controlled mode and supplies the initial external
	// zoom state. Must stay present (or absent) for the widget's lifetime.
	IsZoomed *bool

	// ShouldHandleZoom gates uncontrolled activation. Returning false
	// vetoes the state change; OnZoom still fires. Nil means always zoom.
	ShouldHandleZoom func(Event) bool

	// ShouldReplaceImage governs whether a completed unzoom adopts the
	// magnified source as the new inline source. Nil means true.
	ShouldReplaceImage *bool

	// ShouldRespectMaxDimension enables native-size detection: when the
	// inline rendering already shows every pixel and no ZoomImage is set,
	// the click affordance is disabled.
	ShouldRespectMaxDimension bool

	// ZoomMargin is the cell margin between overlay and viewport edges.
	// Zero uses DefaultZoomMargin; negative means no margin.
	ZoomMargin int

	// DefaultStyles are the consumer-level style-merge inputs.
	DefaultStyles DefaultStyles

	// OnZoom and OnUnzoom are notification callbacks. Nil means no-op.
	OnZoom   func()
	OnUnzoom func()
}

// normalize returns a copy with defaults filled in.
func (o Options) normalize() Options {
	if o.ShouldHandleZoom == nil {
		o.ShouldHandleZoom = func(Event) bool { return true }
	}
	if o.OnZoom == nil {
		o.OnZoom = func() {}
	}
	if o.OnUnzoom == nil {
		o.OnUnzoom = func() {}
	}
	if o.ZoomMargin == 0 {
		o.ZoomMargin = DefaultZoomMargin
	} else if o.ZoomMargin < 0 {
		o.ZoomMargin = 0
	}
	return o
}

// replaceImage resolves the ShouldReplaceImage tri-state (nil = true).
func (o Options) replaceImage() bool {
	return o.ShouldReplaceImage == nil || *o.ShouldReplaceImage
}
