// ABOUTME: Zoom interaction state machine: controlled/uncontrolled reconciliation, activation, unzoom
// ABOUTME: Framework-agnostic core; the Bubble Tea model wires it to messages and commands

package zoomview

import (
	"errors"

	"github.com/mauromedda/zoomview-go/internal/log"
	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// ErrControlModeViolation is returned by Reconcile when the presence of the
// external zoom value disagrees with the mode fixed at construction. This is
// a programmer error: mixed-mode reconciliation has no consistent meaning,
// so the offending update must be aborted before any state mutates.
var ErrControlModeViolation = errors.New("zoomview: isZoomed flipped between controlled and uncontrolled")

// controlMode is the sum type deciding who owns the zoom truth.
// It is fixed at construction and never reassigned.
type controlMode int

const (
	modeUncontrolled controlMode = iota
	modeControlled
)

// Controller owns the zoom interaction state. All mutation goes through
// Reconcile, Zoom, Unzoom, and ObserveLoad; everything else is read-only.
//
// The closing marker is transient overlay-lifecycle state: it keeps the
// overlay mounted while its exit transition runs after a controlled caller
// flipped the external value to false. It never participates in the control
// mode contract and is cleared exclusively by Unzoom.
type Controller struct {
	opts Options
	mode controlMode

	external bool // last observed external value; meaningful only when controlled
	zoomed   bool // internal zoom state; meaningful only when uncontrolled
	closing  bool // transient marker, see type comment

	loadedZoomImage bool
	displayed       Image
	atNativeSize    bool
	sizeObserved    bool

	// prevEffective tracks the effective value across updates so true→false
	// transitions are detected on effective state, not raw inputs.
	prevEffective bool
}

// NewController creates a controller for the given options. The control
// mode is decided here, once, from the presence of opts.IsZoomed.
func NewController(opts Options) *Controller {
	opts = opts.normalize()
	c := &Controller{
		opts:      opts,
		displayed: opts.Image,
	}
	if opts.IsZoomed != nil {
		c.mode = modeControlled
		c.external = *opts.IsZoomed
	}
	c.prevEffective = c.EffectiveZoomed()
	return c
}

// Controlled reports whether the caller owns the zoom truth.
func (c *Controller) Controlled() bool { return c.mode == modeControlled }

// EffectiveZoomed is the zoom value used for all rendering decisions:
// the external value when controlled, the internal flag otherwise.
func (c *Controller) EffectiveZoomed() bool {
	if c.mode == modeControlled {
		return c.external
	}
	return c.zoomed
}

// Closing reports whether the transient closing marker is set.
func (c *Controller) Closing() bool { return c.closing }

// OverlayMounted reports whether the magnified overlay should exist:
// exactly when the effective zoom state is true or the closing marker holds.
func (c *Controller) OverlayMounted() bool { return c.EffectiveZoomed() || c.closing }

// InlineHidden reports whether the inline image is visually hidden.
// It is the same predicate as OverlayMounted so the two never disagree.
func (c *Controller) InlineHidden() bool { return c.OverlayMounted() }

// Displayed returns the current inline image descriptor.
func (c *Controller) Displayed() Image { return c.displayed }

// AtNativeSize reports whether the inline rendering was detected at native
// resolution with no magnified override, disabling the zoom affordance.
func (c *Controller) AtNativeSize() bool { return c.atNativeSize }

// HasLoadedZoomImage reports whether at least one zoom cycle completed,
// letting the overlay skip its initial load wait on later mounts.
func (c *Controller) HasLoadedZoomImage() bool { return c.loadedZoomImage }

// ZoomEnabled reports whether activation is available at all.
func (c *Controller) ZoomEnabled() bool { return !c.atNativeSize }

// Reconcile observes the external zoom input for one update and reconciles
// it against the fixed control mode. external must be nil for uncontrolled
// controllers and non-nil for controlled ones; any disagreement returns
// ErrControlModeViolation before touching state.
//
// The returned forceClose is true when the effective value transitioned
// true→false while an overlay may be mounted: the caller must instruct the
// mounted overlay instance to close immediately, and must do so in its
// commit phase, not while rendering. A controlled-path transition also sets
// the closing marker so the overlay stays mounted through its own exit.
func (c *Controller) Reconcile(external *bool) (forceClose bool, err error) {
	if (external != nil) != (c.mode == modeControlled) {
		return false, ErrControlModeViolation
	}
	if external != nil {
		c.external = *external
	}

	eff := c.EffectiveZoomed()
	if c.prevEffective && !eff {
		if c.mode == modeControlled {
			c.closing = true
		}
		forceClose = true
		log.Debug("zoomview: effective unzoom for %q (controlled=%v)", c.displayed.Class, c.Controlled())
	}
	c.prevEffective = eff
	return forceClose, nil
}

// Zoom handles an activation request.
//
// Controlled mode never mutates internal state: OnZoom fires and the caller
// decides whether to flip the external value. Uncontrolled mode consults
// ShouldHandleZoom; a veto still fires OnZoom without a state change.
//
// Activation while the closing marker is set is ignored entirely: the
// overlay instance is mid-exit and a second mount would race its completion
// signal. Activation at native size is unreachable through the model, but
// the guard here keeps direct callers honest.
func (c *Controller) Zoom(ev Event) {
	if c.closing || c.atNativeSize {
		return
	}
	if c.mode == modeControlled {
		c.opts.OnZoom()
		return
	}
	if !c.opts.ShouldHandleZoom(ev) {
		c.opts.OnZoom()
		return
	}
	c.zoomed = true
	c.prevEffective = true
	log.Debug("zoomview: zoom %q", c.displayed.Class)
	c.opts.OnZoom()
}

// Unzoom finalizes a zoom cycle with the magnified source reported by the
// overlay. Applied as one atomic update: the load flag is set, the internal
// zoom flag drops, the displayed source is adopted when configured, and the
// closing marker is cleared. No other code path clears the marker.
// OnUnzoom fires once, after all state has been written.
func (c *Controller) Unzoom(src string) {
	c.loadedZoomImage = true
	c.zoomed = false
	if c.opts.replaceImage() {
		c.displayed.Src = src
	}
	c.closing = false
	c.prevEffective = c.EffectiveZoomed()
	log.Debug("zoomview: unzoom %q -> src %q", c.displayed.Class, c.displayed.Src)
	c.opts.OnUnzoom()
}

// ObserveLoad records the inline image's first load notification and runs
// native-size detection once. Later notifications are ignored; the result
// is deliberately not recomputed on resize.
func (c *Controller) ObserveLoad(intrinsic termimg.Dimensions, box termimg.Rect) {
	if c.sizeObserved {
		return
	}
	c.sizeObserved = true
	if !c.opts.ShouldRespectMaxDimension || c.opts.ZoomImage != nil {
		return
	}
	c.atNativeSize = renderedAtNativeSize(intrinsic, box)
	if c.atNativeSize {
		log.Debug("zoomview: %q at native size, zoom disabled", c.displayed.Class)
	}
}
