// ABOUTME: Fuzzy image picker: filters loaded image paths and jumps focus
// ABOUTME: Thin state machine over sahilm/fuzzy driven by key messages

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/zoomview-go/internal/theme"
)

type pickerModel struct {
	query   string
	paths   []string
	matches []fuzzy.Match
	cursor  int
}

func newPicker(paths []string) pickerModel {
	p := pickerModel{paths: paths}
	p.refilter()
	return p
}

// Update consumes one key. It returns the new picker state, the picked
// widget index (-1 when nothing was picked), and whether the picker closed.
func (p pickerModel) Update(msg tea.KeyMsg) (pickerModel, int, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return p, -1, true

	case tea.KeyEnter:
		if len(p.matches) == 0 {
			return p, -1, true
		}
		return p, p.matches[p.cursor].Index, true

	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
		return p, -1, false

	case tea.KeyDown:
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return p, -1, false

	case tea.KeyBackspace:
		if p.query != "" {
			p.query = p.query[:len(p.query)-1]
			p.refilter()
		}
		return p, -1, false

	case tea.KeyRunes:
		p.query += string(msg.Runes)
		p.refilter()
		return p, -1, false
	}
	return p, -1, false
}

// refilter recomputes matches for the current query. An empty query lists
// everything in load order.
func (p *pickerModel) refilter() {
	p.cursor = 0
	if p.query == "" {
		p.matches = make([]fuzzy.Match, len(p.paths))
		for i, path := range p.paths {
			p.matches[i] = fuzzy.Match{Str: path, Index: i}
		}
		return
	}
	p.matches = fuzzy.Find(p.query, p.paths)
}

func (p pickerModel) View(palette theme.Palette) string {
	prompt := lipgloss.NewStyle().Foreground(palette.Focus).Bold(true)
	selected := lipgloss.NewStyle().Foreground(palette.Focus)
	normal := lipgloss.NewStyle().Foreground(palette.Muted)

	var b strings.Builder
	b.WriteString(prompt.Render(fmt.Sprintf("pick: %s_", p.query)))
	b.WriteString("\n")
	for i, m := range p.matches {
		style := normal
		marker := "  "
		if i == p.cursor {
			style = selected
			marker = "> "
		}
		b.WriteString(style.Render(marker + m.Str))
		b.WriteString("\n")
	}
	if len(p.matches) == 0 {
		b.WriteString(normal.Render("  no matches"))
	}
	return strings.TrimRight(b.String(), "\n")
}
