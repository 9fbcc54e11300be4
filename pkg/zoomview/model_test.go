// ABOUTME: Tests for the zoom widget model: activation, overlay lifecycle, controlled flow
// ABOUTME: Walks spec scenarios end to end through Update messages

package zoomview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// Compile-time check: Model must satisfy tea.Model.
var _ tea.Model = Model{}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(opts).WithProtocol(termimg.ProtoNone).SetFocused(true)
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// completeOverlay force-closes the mounted overlay and runs the transition
// to completion, delivering the resulting ZoomCompleteMsg back to the model.
func completeOverlay(t *testing.T, m Model) Model {
	t.Helper()
	o := m.Overlay()
	if o == nil {
		t.Fatal("no overlay mounted")
	}
	if !o.Closing() {
		if cmd := o.ForceClose(); cmd == nil {
			t.Fatal("ForceClose returned nil on an open overlay")
		}
	}
	msg := drainClose(o, closeFrames+2)
	if msg == nil {
		t.Fatal("overlay never completed")
	}
	m, _ = apply(t, m, msg)
	return m
}

func TestModel_UncontrolledZoomCycle(t *testing.T) {
	t.Parallel()

	// Scenario: default config, keyboard activation, overlay completion
	// adopts the magnified source.
	m := newTestModel(t, Options{
		Image:     Image{Src: "a.jpg", Alt: "a photo"},
		ZoomImage: &Image{Src: "a-large.jpg", Alt: "a photo"},
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Zoomed() {
		t.Fatal("expected zoomed after enter")
	}
	if m.Overlay() == nil {
		t.Fatal("expected overlay mounted")
	}
	if view := m.View(); strings.Contains(view, "▄") || strings.Contains(view, zoomAffordance) {
		t.Error("inline image should be hidden while zoomed")
	}

	m = completeOverlay(t, m)

	if m.Zoomed() {
		t.Error("expected unzoomed after completion")
	}
	if m.Overlay() != nil {
		t.Error("overlay should be unmounted after completion")
	}
	if src := m.Displayed().Src; src != "a-large.jpg" {
		t.Errorf("displayed src = %q, want adopted a-large.jpg", src)
	}
}

func TestModel_NoReplaceKeepsOriginalSource(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{
		Image:              Image{Src: "a.jpg"},
		ZoomImage:          &Image{Src: "a-large.jpg"},
		ShouldReplaceImage: boolPtr(false),
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = completeOverlay(t, m)

	if src := m.Displayed().Src; src != "a.jpg" {
		t.Errorf("displayed src = %q, want original a.jpg", src)
	}
}

func TestModel_MouseActivationInsideRegion(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg"}})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, tea.MouseMsg{
		X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	if !m.Zoomed() {
		t.Error("click inside the inline region should zoom")
	}
}

func TestModel_MouseActivationOutsideRegionIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg"}})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, tea.MouseMsg{
		X: 70, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	if m.Zoomed() {
		t.Error("click outside the inline region must not zoom")
	}
}

func TestModel_VetoStillNotifies(t *testing.T) {
	t.Parallel()

	zoomCalls := 0
	m := newTestModel(t, Options{
		Image:            Image{Src: "a.jpg"},
		ShouldHandleZoom: func(ev Event) bool { return ev.Key == "" },
		OnZoom:           func() { zoomCalls++ },
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	// Keyboard activation is vetoed by the predicate above.
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Zoomed() || m.Overlay() != nil {
		t.Error("vetoed activation must not zoom or mount")
	}
	if zoomCalls != 1 {
		t.Errorf("OnZoom called %d times, want exactly 1", zoomCalls)
	}
}

func TestModel_ControlledExternalFlow(t *testing.T) {
	t.Parallel()

	// Scenario: controlled widget starts zoomed; parent flips to false;
	// overlay stays mounted through its forced close, then unmounts.
	m := newTestModel(t, Options{
		Image:     Image{Src: "a.jpg"},
		ZoomImage: &Image{Src: "a-large.jpg"},
		IsZoomed:  boolPtr(true),
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	// Constructed zoomed, so the overlay is already mounted; re-sending the
	// same external value must not disturb it.
	if m.Overlay() == nil {
		t.Fatal("widget constructed zoomed should mount the overlay")
	}
	m, _ = apply(t, m, SetZoomedMsg{Zoomed: true})
	if m.Overlay() == nil || m.Overlay().Closing() {
		t.Fatal("redundant zoom-in should leave the overlay open")
	}

	m, cmd := apply(t, m, SetZoomedMsg{Zoomed: false})
	if cmd == nil {
		t.Fatal("external deactivation should issue a forced-close command")
	}
	if m.Overlay() == nil {
		t.Fatal("overlay must stay mounted while closing")
	}
	if !m.Overlay().Closing() {
		t.Error("forced close should start the exit transition without any dismiss signal")
	}
	if view := m.View(); strings.Contains(view, zoomAffordance) {
		t.Error("inline image must stay hidden while closing")
	}

	m = completeOverlay(t, m)
	if m.Overlay() != nil {
		t.Error("overlay should unmount after completion")
	}
	if src := m.Displayed().Src; src != "a-large.jpg" {
		t.Errorf("displayed src = %q, want a-large.jpg", src)
	}
}

func TestModel_ConstructedZoomedMountsOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{
		Image:    Image{Src: "a.jpg", Alt: "a photo"},
		IsZoomed: boolPtr(true),
	})

	if m.Overlay() == nil {
		t.Fatal("widget constructed zoomed should mount its overlay immediately")
	}
	if view := m.View(); strings.Contains(view, "▄") || strings.Contains(view, zoomAffordance) {
		t.Error("inline image must be hidden while zoomed")
	}

	// Bytes arriving after the mount replace the load placeholder.
	m = loadImage(t, m, "a.jpg", 640, 480)
	if view := m.Overlay().View(); strings.Contains(view, "loading") {
		t.Error("overlay should adopt the inline bytes once they arrive")
	}
}

func TestModel_ControlledDeactivationWithoutPriorUpdate(t *testing.T) {
	t.Parallel()

	// The parent constructed the widget zoomed and flips to false without
	// ever re-sending true; the cycle must still run to completion.
	m := newTestModel(t, Options{
		Image:    Image{Src: "a.jpg"},
		IsZoomed: boolPtr(true),
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, cmd := apply(t, m, SetZoomedMsg{Zoomed: false})
	if cmd == nil {
		t.Fatal("deactivation should issue the transition tick command")
	}
	if m.Overlay() == nil {
		t.Fatal("overlay must be mounted for the exit transition")
	}
	if !m.Overlay().Closing() {
		t.Fatal("the forced close must reach the mounted overlay")
	}

	m = completeOverlay(t, m)
	if m.Overlay() != nil {
		t.Error("overlay should unmount after completion")
	}
	if view := m.View(); !strings.Contains(view, "▄") {
		t.Error("inline image should be visible again after the cycle")
	}
}

func TestModel_ControlledActivationOnlyNotifies(t *testing.T) {
	t.Parallel()

	zoomCalls := 0
	m := newTestModel(t, Options{
		Image:    Image{Src: "a.jpg"},
		IsZoomed: boolPtr(false),
		OnZoom:   func() { zoomCalls++ },
	})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Zoomed() || m.Overlay() != nil {
		t.Error("controlled activation must not change state or mount")
	}
	if zoomCalls != 1 {
		t.Errorf("OnZoom called %d times, want exactly 1", zoomCalls)
	}
}

func TestModel_SetZoomedOnUncontrolledPanics(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg"}})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on control-mode violation")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrControlModeViolation) {
			t.Fatalf("panic value = %v, want ErrControlModeViolation", r)
		}
	}()
	m.Update(SetZoomedMsg{Zoomed: true})
}

func TestModel_ControlledDismissBridgesToCaller(t *testing.T) {
	t.Parallel()

	unzoomCalls := 0
	m := newTestModel(t, Options{
		Image:    Image{Src: "a.jpg"},
		IsZoomed: boolPtr(true),
		OnUnzoom: func() { unzoomCalls++ },
	})
	m = loadImage(t, m, "a.jpg", 640, 480)
	m, _ = apply(t, m, SetZoomedMsg{Zoomed: true})

	// Escape while zoomed goes to the ambient dismiss bridge, which calls
	// the caller's OnUnzoom instead of closing anything itself.
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if unzoomCalls != 1 {
		t.Errorf("OnUnzoom called %d times, want 1", unzoomCalls)
	}
	if m.Overlay() == nil || m.Overlay().Closing() {
		t.Error("ambient dismiss must not close the overlay directly")
	}
}

func TestModel_UncontrolledEscapeClosesViaOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg"}})
	m = loadImage(t, m, "a.jpg", 640, 480)
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("escape should start the overlay's own exit transition")
	}
	if !m.Overlay().Closing() {
		t.Error("overlay should be closing after escape")
	}
	// Still zoomed until the completion callback lands.
	if !m.Zoomed() {
		t.Error("effective state must hold until completion")
	}
}

func TestModel_NativeSizeDisablesActivation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{
		Image:                     Image{Src: "tiny.png"},
		ShouldRespectMaxDimension: true,
	})
	// 16x10 pixels fit the 24x8-cell half-block budget outright.
	m = loadImage(t, m, "tiny.png", 16, 10)

	if view := m.View(); strings.Contains(view, zoomAffordance) {
		t.Error("affordance hint must be suppressed at native size")
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Zoomed() || m.Overlay() != nil {
		t.Error("activation must be a no-op at native size")
	}

	m, _ = apply(t, m, tea.MouseMsg{
		X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	if m.Zoomed() {
		t.Error("mouse activation must also be disabled at native size")
	}
}

func TestModel_StaleCompletionIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg"}})
	m = loadImage(t, m, "a.jpg", 640, 480)

	m, _ = apply(t, m, ZoomCompleteMsg{Src: "ghost.jpg"})
	if m.Displayed().Src != "a.jpg" {
		t.Error("completion without a mounted overlay must be ignored")
	}
}

func TestModel_HiddenViewKeepsHeight(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Image: Image{Src: "a.jpg", Alt: "a photo"}})
	m = loadImage(t, m, "a.jpg", 640, 480)

	visible := m.View()
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	hidden := m.View()

	if strings.Count(hidden, "\n") != strings.Count(visible, "\n") {
		t.Errorf("hidden view height %d lines, visible %d lines",
			strings.Count(hidden, "\n")+1, strings.Count(visible, "\n")+1)
	}
	if strings.Contains(hidden, "▄") {
		t.Error("hidden view must not render image cells")
	}
}
