// ABOUTME: Magnified overlay model: viewport-fitted rendering and frame-stepped exit transition
// ABOUTME: Reports completion exactly once via ZoomCompleteMsg carrying the adopted source

package zoomview

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// closeFrames is the number of shrink steps in the exit transition.
const closeFrames = 4

// closeTickInterval is the delay between exit transition frames.
const closeTickInterval = 30 * time.Millisecond

// closeTickMsg advances the overlay exit transition by one frame.
type closeTickMsg struct{}

// OverlayModel renders the magnified image centered in the viewport with
// the configured margin, runs its own closing transition, and reports
// completion through ZoomCompleteMsg. It is a pointer model: the zoom
// widget holds the only reference, written on mount and dropped on unmount,
// so ForceClose can reach the mounted instance imperatively.
type OverlayModel struct {
	src    string // source reported back on completion
	alt    string
	data   []byte
	proto  termimg.Protocol
	margin int
	style  lipgloss.Style

	width, height int
	intrinsic     termimg.Dimensions

	closing      bool
	frame        int
	done         bool // one-shot completion guard
	skipLoadWait bool
}

var _ tea.Model = (*OverlayModel)(nil)

// newOverlayModel builds an overlay for the given magnified image.
// skipLoadWait is set when an earlier zoom cycle already loaded the
// magnified variant, so no initial load placeholder is shown.
func newOverlayModel(img Image, data []byte, proto termimg.Protocol, margin, width, height int, style lipgloss.Style, skipLoadWait bool) *OverlayModel {
	o := &OverlayModel{
		src:          img.Src,
		alt:          img.Alt,
		data:         data,
		proto:        proto,
		margin:       margin,
		style:        style,
		width:        width,
		height:       height,
		skipLoadWait: skipLoadWait,
	}
	if dim, err := termimg.GetDimensions(data); err == nil {
		o.intrinsic = dim
	} else {
		// Unknown content still gets a stable 4:3 placement.
		o.intrinsic = termimg.Dimensions{Width: 4, Height: 3}
	}
	return o
}

// Init returns nil; the overlay is fully synchronous until it closes.
func (o *OverlayModel) Init() tea.Cmd {
	return nil
}

// Update handles resize, the overlay's own Escape affordance, and exit
// transition ticks.
func (o *OverlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.width = msg.Width
		o.height = msg.Height
		return o, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return o, o.beginClose()
		}
		return o, nil

	case closeTickMsg:
		if !o.closing || o.done {
			return o, nil
		}
		o.frame++
		if o.frame >= closeFrames {
			o.done = true
			src := o.src
			return o, func() tea.Msg { return ZoomCompleteMsg{Src: src} }
		}
		return o, closeTick()
	}
	return o, nil
}

// ForceClose starts the exit transition immediately, bypassing the normal
// dismiss flow. Used when the effective zoom state was deactivated
// externally. Safe to call more than once; only the first call acts.
func (o *OverlayModel) ForceClose() tea.Cmd {
	return o.beginClose()
}

// Closing reports whether the exit transition is running.
func (o *OverlayModel) Closing() bool { return o.closing }

// setImage replaces the overlay content with bytes that arrived after the
// mount, dropping the load placeholder on the next render.
func (o *OverlayModel) setImage(data []byte) {
	o.data = data
	if dim, err := termimg.GetDimensions(data); err == nil {
		o.intrinsic = dim
	}
}

// Rect returns the overlay's current placement, accounting for transition
// shrink. Used by the dismiss listener for outside-click hit testing.
func (o *OverlayModel) Rect() termimg.Rect {
	r := termimg.FitViewport(o.intrinsic, o.width, o.height, o.margin)
	if o.closing {
		r = termimg.Shrink(r, o.frame, closeFrames)
	}
	return r
}

func (o *OverlayModel) beginClose() tea.Cmd {
	if o.closing || o.done {
		return nil
	}
	o.closing = true
	o.frame = 0
	return closeTick()
}

func closeTick() tea.Cmd {
	return tea.Tick(closeTickInterval, func(time.Time) tea.Msg {
		return closeTickMsg{}
	})
}

// View renders the magnified image at its placement rectangle, with the
// caption and dismiss hint on the line above.
func (o *OverlayModel) View() string {
	r := o.Rect()
	if r.Empty() {
		return ""
	}

	var body []string
	switch {
	case len(o.data) == 0 && !o.skipLoadWait:
		body = termimg.Placeholder(r, "loading…")
	case len(o.data) == 0:
		body = termimg.Placeholder(r, "image")
	default:
		lines, err := termimg.Render(o.data, o.proto, r)
		if err != nil {
			body = termimg.Placeholder(r, "image")
		} else {
			body = lines
		}
	}

	var b strings.Builder
	indent := strings.Repeat(" ", r.X)
	for i := 0; i < r.Y-1; i++ {
		b.WriteByte('\n')
	}
	if r.Y > 0 {
		title := caption(o.alt, r.Cols)
		if title == "" {
			title = "esc to close"
		}
		b.WriteString(indent + o.style.Render(title) + "\n")
	}
	for i, line := range body {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent + line)
	}
	return b.String()
}
