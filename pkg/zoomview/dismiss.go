// ABOUTME: Ambient dismiss listener: escape, outside click, and scroll while the overlay is up
// ABOUTME: Controlled mode bridges signals to the caller's OnUnzoom; uncontrolled disables the path

package zoomview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// dismisser interprets ambient input as dismiss signals while the overlay
// is mounted. Only a controlled caller gets the ambient bridge: it needs
// outside events translated into an external state update. An uncontrolled
// widget already owns its unzoom path through the overlay's own affordances,
// so its callback is nil and Handle consumes nothing.
type dismisser struct {
	onDismiss func()
}

// newDismisser wires the dismiss callback per control mode.
func newDismisser(controlled bool, onUnzoom func()) dismisser {
	if controlled {
		return dismisser{onDismiss: onUnzoom}
	}
	return dismisser{}
}

// Handle inspects one input message against the overlay's current placement.
// It returns true when the message was consumed as a dismiss signal.
func (d dismisser) Handle(msg tea.Msg, overlay termimg.Rect) bool {
	if d.onDismiss == nil {
		return false
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			d.onDismiss()
			return true
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if msg.Action == tea.MouseActionPress {
				d.onDismiss()
				return true
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && !overlay.Contains(msg.X, msg.Y) {
				d.onDismiss()
				return true
			}
		}
	}
	return false
}
