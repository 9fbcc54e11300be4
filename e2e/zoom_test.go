// ABOUTME: E2E tests for the zoom cycle: startup, magnify, dismiss, quit
// ABOUTME: Drives the real binary through a PTY and matches rendered output

package e2e

import (
	"testing"
	"time"
)

func TestViewer_ShowsImagesAndQuits(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	img := writeTestImage(t, "sunset.png", 640, 480)
	s := startViewer(t, img)
	defer s.close()

	s.expectStringTimeout(t, "sunset.png", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestViewer_ZoomThenEscape(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	img := writeTestImage(t, "harbor.png", 640, 480)
	s := startViewer(t, img)
	defer s.close()

	s.expectStringTimeout(t, "harbor.png", 5*time.Second)

	// Enter magnifies the focused image; the hint line leaves the screen.
	s.send(t, "\r")
	time.Sleep(300 * time.Millisecond)

	// Escape runs the exit transition and restores the browse view.
	s.sendEsc(t)
	time.Sleep(500 * time.Millisecond)
	s.expectStringTimeout(t, "tab focus", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestViewer_CtrlCExits(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	img := writeTestImage(t, "field.png", 320, 240)
	s := startViewer(t, img)
	defer s.close()

	s.expectStringTimeout(t, "field.png", 5*time.Second)

	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}
