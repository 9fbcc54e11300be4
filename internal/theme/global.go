// ABOUTME: Process-wide active viewer theme behind an atomic.Pointer
// ABOUTME: Widgets read Current() at render time; Set() swaps themes without locks

package theme

import "sync/atomic"

var active atomic.Pointer[Theme]

func init() {
	p := DefaultPalette()
	active.Store(&Theme{Name: "default", Palette: p})
}

// Current returns the active viewer theme. Never returns nil.
func Current() *Theme {
	return active.Load()
}

// Set atomically replaces the active viewer theme. Safe to call while
// widgets are rendering; the swap applies from the next frame.
func Set(t *Theme) {
	active.Store(t)
}
