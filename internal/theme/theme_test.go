// ABOUTME: Tests for theme types, builtin lookup, and the widget style bridge
// ABOUTME: Covers palette completeness and Styles() color wiring

package theme

import "testing"

func TestDefaultPalette_Complete(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	if p.Border == "" || p.Caption == "" || p.Affordance == "" {
		t.Error("default palette has empty inline colors")
	}
	if p.OverlayBorder == "" || p.OverlayTitle == "" || p.Placeholder == "" {
		t.Error("default palette has empty overlay colors")
	}
	if p.Heading == "" || p.Focus == "" || p.Muted == "" || p.ErrorFg == "" || p.HelpText == "" {
		t.Error("default palette has empty chrome colors")
	}
}

func TestPalette_Styles(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	s := p.Styles()

	if got := s.Image.GetForeground(); got != p.Caption {
		t.Errorf("Image foreground = %v; want %v", got, p.Caption)
	}
	if got := s.Overlay.GetBorderTopForeground(); got != p.OverlayBorder {
		t.Errorf("Overlay border = %v; want %v", got, p.OverlayBorder)
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) = nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
	}
	if Builtin("nope") != nil {
		t.Error("unknown builtin should return nil")
	}
}

func TestCurrent_NeverNil(t *testing.T) {
	t.Parallel()

	if Current() == nil {
		t.Fatal("Current() returned nil")
	}
	if Current().Name != "default" {
		t.Errorf("initial theme = %q; want default", Current().Name)
	}
}
