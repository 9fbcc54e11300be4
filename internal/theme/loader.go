// ABOUTME: JSON theme file loading with validation and default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Fields use snake_case to match the JSON file format; values are
// lipgloss color strings (ANSI indexes or hex).
type jsonPalette struct {
	Border     string `json:"border"`
	Caption    string `json:"caption"`
	Affordance string `json:"affordance"`

	OverlayBorder string `json:"overlay_border"`
	OverlayTitle  string `json:"overlay_title"`
	Placeholder   string `json:"placeholder"`

	Heading  string `json:"heading"`
	Focus    string `json:"focus"`
	Muted    string `json:"muted"`
	ErrorFg  string `json:"error_fg"`
	HelpText string `json:"help_text"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	base := DefaultPalette()
	p := convertPalette(jt.Palette, base)

	return &Theme{
		Name:    jt.Name,
		Palette: p,
	}, nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base // start with defaults

	// Map JSON fields to Palette fields by reflection on matching names.
	// This avoids a long manual mapping.
	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		fieldName := jpt.Field(i).Name
		pf := pv.FieldByName(fieldName)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(lipgloss.Color(jsonVal)))
		}
	}

	return p
}
