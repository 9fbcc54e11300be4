// ABOUTME: Built-in viewer themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "github.com/charmbracelet/lipgloss"

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Border:     lipgloss.Color("238"),
			Caption:    lipgloss.Color("250"),
			Affordance: lipgloss.Color("117"),

			OverlayBorder: lipgloss.Color("61"),
			OverlayTitle:  lipgloss.Color("255"),
			Placeholder:   lipgloss.Color("242"),

			Heading:  lipgloss.Color("214"),
			Focus:    lipgloss.Color("221"),
			Muted:    lipgloss.Color("240"),
			ErrorFg:  lipgloss.Color("203"),
			HelpText: lipgloss.Color("243"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Border:     lipgloss.Color("249"),
			Caption:    lipgloss.Color("236"),
			Affordance: lipgloss.Color("25"),

			OverlayBorder: lipgloss.Color("61"),
			OverlayTitle:  lipgloss.Color("232"),
			Placeholder:   lipgloss.Color("247"),

			Heading:  lipgloss.Color("166"),
			Focus:    lipgloss.Color("130"),
			Muted:    lipgloss.Color("248"),
			ErrorFg:  lipgloss.Color("160"),
			HelpText: lipgloss.Color("246"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Border:     lipgloss.Color("245"),
			Caption:    lipgloss.Color("255"),
			Affordance: lipgloss.Color("255"),

			OverlayBorder: lipgloss.Color("255"),
			OverlayTitle:  lipgloss.Color("255"),
			Placeholder:   lipgloss.Color("245"),

			Heading:  lipgloss.Color("255"),
			Focus:    lipgloss.Color("255"),
			Muted:    lipgloss.Color("245"),
			ErrorFg:  lipgloss.Color("255"),
			HelpText: lipgloss.Color("245"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
