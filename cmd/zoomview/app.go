// ABOUTME: Root Bubble Tea model composing zoom widgets with picker and help overlays
// ABOUTME: Routes load and zoom messages to the owning widget; lays widgets out vertically

package main

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/zoomview-go/internal/config"
	"github.com/mauromedda/zoomview-go/internal/theme"
	"github.com/mauromedda/zoomview-go/pkg/zoomview"
)

type appModel struct {
	widgets []zoomview.Model
	images  []imageFile
	focus   int

	width  int
	height int

	picker *pickerModel
	help   bool
	md     *markdownRenderer

	palette theme.Palette
}

var _ tea.Model = appModel{}

func newApp(images []imageFile, cfg *config.Settings, width, height int) appModel {
	palette := theme.Current().Palette
	styles := palette.Styles()

	widgets := make([]zoomview.Model, len(images))
	for i, img := range images {
		opts := zoomview.Options{
			Image:                     zoomview.Image{Src: img.path, Alt: filepath.Base(img.path)},
			DefaultStyles:             styles,
			ZoomMargin:                cfg.ZoomMargin,
			ShouldReplaceImage:        cfg.ReplaceImage,
			ShouldRespectMaxDimension: cfg.RespectMaxDimension,
		}
		widgets[i] = zoomview.NewModel(opts).SetFocused(i == 0)
	}

	a := appModel{
		widgets: widgets,
		images:  images,
		width:   width,
		height:  height,
		md:      newMarkdownRenderer(),
		palette: palette,
	}
	a.recalcOrigins()
	return a
}

// Init delivers every image to its widget.
func (a appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.images))
	for _, img := range a.images {
		cmds = append(cmds, func() tea.Msg {
			return zoomview.ImageLoadedMsg{Src: img.path, Data: img.data, Intrinsic: img.dim}
		})
	}
	return tea.Batch(cmds...)
}

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		for i := range a.widgets {
			a.widgets[i], cmds = a.forward(i, msg, cmds)
		}
		a.recalcOrigins()
		return a, tea.Batch(cmds...)

	case zoomview.ImageLoadedMsg:
		if i := a.widgetFor(msg.Src); i >= 0 {
			var cmds []tea.Cmd
			a.widgets[i], cmds = a.forward(i, msg, nil)
			a.recalcOrigins()
			return a, tea.Batch(cmds...)
		}
		return a, nil

	case zoomview.ZoomCompleteMsg:
		if i := a.overlayOwner(); i >= 0 {
			var cmds []tea.Cmd
			a.widgets[i], cmds = a.forward(i, msg, nil)
			a.recalcOrigins()
			return a, tea.Batch(cmds...)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if i := a.overlayOwner(); i >= 0 {
			var cmds []tea.Cmd
			a.widgets[i], cmds = a.forward(i, msg, nil)
			return a, tea.Batch(cmds...)
		}
		var cmds []tea.Cmd
		for i := range a.widgets {
			a.widgets[i], cmds = a.forward(i, msg, cmds)
		}
		return a, tea.Batch(cmds...)

	default:
		// Internal widget messages, overlay transition ticks included, go
		// to the widget that owns the mounted overlay.
		if i := a.overlayOwner(); i >= 0 {
			var cmds []tea.Cmd
			a.widgets[i], cmds = a.forward(i, msg, nil)
			return a, tea.Batch(cmds...)
		}
		return a, nil
	}
}

func (a appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.picker != nil {
		return a.handlePickerKey(msg)
	}
	if a.help {
		a.help = false
		return a, nil
	}

	// A mounted overlay owns the keyboard until it resolves.
	if i := a.overlayOwner(); i >= 0 {
		var cmds []tea.Cmd
		a.widgets[i], cmds = a.forward(i, msg, nil)
		return a, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab", "j", "down":
		a.setFocus((a.focus + 1) % len(a.widgets))
		return a, nil
	case "shift+tab", "k", "up":
		a.setFocus((a.focus + len(a.widgets) - 1) % len(a.widgets))
		return a, nil
	case "?":
		a.help = true
		return a, nil
	case "/":
		p := newPicker(a.imagePaths())
		a.picker = &p
		return a, nil
	}

	var cmds []tea.Cmd
	a.widgets[a.focus], cmds = a.forward(a.focus, msg, nil)
	return a, tea.Batch(cmds...)
}

func (a appModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, picked, closed := a.picker.Update(msg)
	if closed {
		a.picker = nil
		if picked >= 0 {
			a.setFocus(picked)
		}
		return a, nil
	}
	a.picker = &p
	return a, nil
}

// forward delivers msg to widget i and appends any resulting command.
func (a *appModel) forward(i int, msg tea.Msg, cmds []tea.Cmd) (zoomview.Model, []tea.Cmd) {
	updated, cmd := a.widgets[i].Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return updated.(zoomview.Model), cmds
}

func (a *appModel) setFocus(i int) {
	a.widgets[a.focus] = a.widgets[a.focus].SetFocused(false)
	a.focus = i
	a.widgets[a.focus] = a.widgets[a.focus].SetFocused(true)
}

// widgetFor returns the index of the widget showing src, or -1.
func (a appModel) widgetFor(src string) int {
	for i := range a.widgets {
		if a.images[i].path == src || a.widgets[i].Displayed().Src == src {
			return i
		}
	}
	return -1
}

// overlayOwner returns the index of the widget with a mounted overlay, or -1.
func (a appModel) overlayOwner() int {
	for i := range a.widgets {
		if a.widgets[i].Overlay() != nil {
			return i
		}
	}
	return -1
}

func (a appModel) imagePaths() []string {
	paths := make([]string, len(a.images))
	for i, img := range a.images {
		paths[i] = img.path
	}
	return paths
}

// recalcOrigins re-derives each widget's top-left cell from the stacked
// layout so mouse hit testing stays accurate. The +1 offsets skip the
// heading line and the frame border.
func (a *appModel) recalcOrigins() {
	y := 0
	for i := range a.widgets {
		a.widgets[i] = a.widgets[i].SetOrigin(1, y+2)
		y += lipgloss.Height(a.widgets[i].View()) + 1
	}
}

func (a appModel) View() string {
	if a.help {
		return a.md.Render(helpText, a.width)
	}
	if i := a.overlayOwner(); i >= 0 {
		return a.widgets[i].Overlay().View()
	}

	heading := lipgloss.NewStyle().Foreground(a.palette.Heading).Bold(true)
	focused := lipgloss.NewStyle().Foreground(a.palette.Focus).Bold(true)
	muted := lipgloss.NewStyle().Foreground(a.palette.Muted)

	var b strings.Builder
	for i := range a.widgets {
		marker := "  "
		style := heading
		if i == a.focus {
			marker = "▸ "
			style = focused
		}
		b.WriteString(style.Render(marker + a.images[i].path))
		b.WriteString("\n")
		b.WriteString(a.widgets[i].View())
		b.WriteString("\n")
	}

	if a.picker != nil {
		b.WriteString("\n")
		b.WriteString(a.picker.View(a.palette))
	} else {
		b.WriteString("\n")
		b.WriteString(muted.Render("tab focus · enter zoom · / pick · ? help · q quit"))
	}
	return b.String()
}
