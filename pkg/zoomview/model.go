// ABOUTME: Bubble Tea model for the zoom widget: message routing, overlay lifecycle, inline view
// ABOUTME: Wraps the Controller; forced-close commands are issued from Update, never from View

package zoomview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

// Thumbnail cell budget for the inline rendering.
const (
	thumbCols = 24
	thumbRows = 8
)

// SetZoomedMsg drives the external zoom state of a controlled widget.
// Sending it to an uncontrolled widget is a control-mode violation and
// panics: the contract was fixed at construction.
type SetZoomedMsg struct {
	Zoomed bool
}

// ZoomCompleteMsg is emitted by the overlay when its exit transition has
// finished. Src is the magnified source the inline image should adopt.
type ZoomCompleteMsg struct {
	Src string
}

// ImageLoadedMsg delivers decoded image bytes to the widget. The first
// non-zoom load triggers native-size detection. Zoom marks the bytes as the
// magnified variant when a distinct ZoomImage source is configured.
type ImageLoadedMsg struct {
	Src       string
	Data      []byte
	Intrinsic termimg.Dimensions
	Zoom      bool
}

// Model is the zoom widget. Value semantics like every Bubble Tea model;
// the mounted overlay is the one pointer field, shared intentionally so
// ForceClose reaches the live instance.
type Model struct {
	ctrl    *Controller
	opts    Options
	dismiss dismisser
	proto   termimg.Protocol

	overlay *OverlayModel // non-owning; nil when unmounted

	width, height int
	originX       int // inline region top-left, set by the host for hit testing
	originY       int
	focused       bool

	data      []byte // inline image bytes
	zoomData  []byte // magnified variant bytes, when loaded separately
	intrinsic termimg.Dimensions
}

var _ tea.Model = Model{}

// NewModel creates a zoom widget from opts. The control mode is fixed here
// for the widget's lifetime.
func NewModel(opts Options) Model {
	opts = opts.normalize()
	ctrl := NewController(opts)
	m := Model{
		ctrl:    ctrl,
		opts:    opts,
		dismiss: newDismisser(ctrl.Controlled(), opts.OnUnzoom),
		proto:   termimg.Detect(),
	}
	// A controlled widget constructed already zoomed mounts its overlay
	// right away; viewport size and image bytes stream in afterwards.
	if ctrl.OverlayMounted() {
		m.mountOverlay()
	}
	return m
}

// WithProtocol overrides the detected graphics protocol. Returns a new model.
func (m Model) WithProtocol(p termimg.Protocol) Model {
	m.proto = p
	if m.overlay != nil {
		m.overlay.proto = p
	}
	return m
}

// SetFocused sets keyboard focus. Returns a new model.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// IsFocused reports keyboard focus.
func (m Model) IsFocused() bool { return m.focused }

// SetOrigin records the widget's top-left cell in the host layout, used to
// hit-test mouse activation against the inline region. Returns a new model.
func (m Model) SetOrigin(x, y int) Model {
	m.originX = x
	m.originY = y
	return m
}

// Zoomed reports the effective zoom state.
func (m Model) Zoomed() bool { return m.ctrl.EffectiveZoomed() }

// Overlay returns the mounted overlay model for host-level compositing,
// or nil when no overlay is up.
func (m Model) Overlay() *OverlayModel { return m.overlay }

// Displayed returns the current inline image descriptor.
func (m Model) Displayed() Image { return m.ctrl.Displayed() }

// Init returns nil; image loading is the host's concern and arrives via
// ImageLoadedMsg.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages. Commands returned here run after this update
// commits, which is what keeps the forced-close instruction out of the
// render path.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.overlay != nil {
			_, cmd := m.overlay.Update(msg)
			return m, cmd
		}
		return m, nil

	case SetZoomedMsg:
		return m.reconcileExternal(msg.Zoomed)

	case ZoomCompleteMsg:
		if m.overlay == nil {
			return m, nil // stale completion from an already unmounted overlay
		}
		m.ctrl.Unzoom(msg.Src)
		m.overlay = nil
		return m, nil

	case ImageLoadedMsg:
		if msg.Zoom {
			m.zoomData = msg.Data
			if m.overlay != nil && m.opts.ZoomImage != nil {
				m.overlay.setImage(msg.Data)
			}
			return m, nil
		}
		m.data = msg.Data
		m.intrinsic = msg.Intrinsic
		if m.overlay != nil && m.opts.ZoomImage == nil {
			// An overlay mounted before the bytes arrived is still showing
			// its load placeholder; hand it the content now.
			m.overlay.setImage(msg.Data)
		}
		m.ctrl.ObserveLoad(msg.Intrinsic, m.thumbBox())
		return m, nil

	case closeTickMsg:
		if m.overlay == nil {
			return m, nil
		}
		_, cmd := m.overlay.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// reconcileExternal applies a controlled-mode state change. The controller
// rejects the message outright when the widget is uncontrolled.
//
// The mount check runs before the forced close: a deactivation that arrives
// while no overlay instance exists yet (the widget was constructed zoomed
// and never updated) must still mount one, and the forced close has to
// reach that same instance or nothing would ever emit its completion.
func (m Model) reconcileExternal(zoomed bool) (tea.Model, tea.Cmd) {
	forceClose, err := m.ctrl.Reconcile(&zoomed)
	if err != nil {
		panic(err)
	}

	if m.ctrl.OverlayMounted() && m.overlay == nil {
		m.mountOverlay()
	}
	var cmd tea.Cmd
	if forceClose && m.overlay != nil {
		cmd = m.overlay.ForceClose()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if m.dismiss.Handle(msg, m.overlay.Rect()) {
			return m, nil
		}
		if m.ctrl.Controlled() {
			// Ambient path owns dismissal; the overlay's own escape
			// affordance is reserved for uncontrolled widgets.
			return m, nil
		}
		_, cmd := m.overlay.Update(msg)
		return m, cmd
	}

	if !m.focused || !m.ctrl.ZoomEnabled() {
		return m, nil
	}
	switch msg.String() {
	case "enter", " ":
		return m.activate(Event{X: -1, Y: -1, Key: msg.String()})
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		m.dismiss.Handle(msg, m.overlay.Rect())
		return m, nil
	}

	if !m.ctrl.ZoomEnabled() {
		return m, nil
	}
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		if m.inlineRegion().Contains(msg.X, msg.Y) {
			return m.activate(Event{X: msg.X, Y: msg.Y})
		}
	}
	return m, nil
}

// activate runs the controller's activation path and mounts the overlay
// when the effective state demands it.
func (m Model) activate(ev Event) (tea.Model, tea.Cmd) {
	m.ctrl.Zoom(ev)
	if m.ctrl.OverlayMounted() && m.overlay == nil {
		m.mountOverlay()
		return m, m.overlay.Init()
	}
	return m, nil
}

// mountOverlay creates the overlay instance. The magnified descriptor is
// the configured ZoomImage when present, otherwise the overlay derives its
// presentation from the inline image.
func (m *Model) mountOverlay() {
	img := m.ctrl.Displayed()
	data := m.data
	if m.opts.ZoomImage != nil {
		img = *m.opts.ZoomImage
		if len(m.zoomData) > 0 {
			data = m.zoomData
		}
	}
	style := m.opts.DefaultStyles.ZoomImage.
		Inherit(m.opts.DefaultStyles.Overlay).
		Inherit(m.opts.DefaultStyles.ZoomContainer)

	m.overlay = newOverlayModel(img, data, m.proto, m.opts.ZoomMargin,
		m.width, m.height, style, m.ctrl.HasLoadedZoomImage())
}

// thumbBox is the inline thumbnail's cell box, aspect-fitted once the
// intrinsic dimensions are known.
func (m Model) thumbBox() termimg.Rect {
	dim := m.intrinsic
	if dim.Width <= 0 || dim.Height <= 0 {
		dim = termimg.Dimensions{Width: 4, Height: 3}
	}
	r := termimg.FitViewport(dim, thumbCols, thumbRows, 0)
	r.X, r.Y = 0, 0
	return r
}

// inlineRegion is the thumbnail box translated to host coordinates.
func (m Model) inlineRegion() termimg.Rect {
	r := m.thumbBox()
	r.X = m.originX
	r.Y = m.originY
	return r
}

// View renders the inline image block: thumbnail, caption, and affordance
// hint. While the overlay is mounted the block is blanked but keeps its
// height, so document flow never shifts.
func (m Model) View() string {
	style := computeInlineStyle(m.ctrl)
	box := m.thumbBox()

	var body []string
	if len(m.data) > 0 {
		lines, err := termimg.Render(m.data, m.proto, box)
		if err != nil {
			body = termimg.Placeholder(box, "image")
		} else {
			body = lines
		}
	} else {
		body = termimg.Placeholder(box, "loading…")
	}

	var lines []string
	lines = append(lines, body...)
	if alt := caption(m.ctrl.Displayed().Alt, box.Cols); alt != "" {
		lines = append(lines, alt)
	}
	if style.Affordance != "" {
		lines = append(lines, style.Affordance)
	}

	content := style.Frame.Render(strings.Join(lines, "\n"))

	if style.Hidden {
		// Same height, no content: the visibility analog of hidden.
		return strings.Repeat("\n", lipgloss.Height(content)-1)
	}
	return content
}
