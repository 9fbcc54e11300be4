// ABOUTME: Terminal graphics protocol detection from environment variables
// ABOUTME: Recognizes Kitty and iTerm2; everything else falls back to half-block cells

package termimg

import (
	"os"
	"strings"
)

// Protocol identifies the terminal graphics protocol to use.
type Protocol int

const (
	// ProtoNone means no graphics protocol; render half-block cells.
	ProtoNone Protocol = iota
	// ProtoKitty uses the Kitty terminal graphics protocol.
	ProtoKitty
	// ProtoITerm2 uses the iTerm2 inline images protocol.
	ProtoITerm2
)

// String returns the protocol name.
func (p Protocol) String() string {
	switch p {
	case ProtoKitty:
		return "kitty"
	case ProtoITerm2:
		return "iterm2"
	default:
		return "none"
	}
}

// Detect inspects the environment and returns the best available protocol.
func Detect() Protocol {
	return DetectFrom(os.Getenv("TERM_PROGRAM"), os.Getenv("TERM"), os.Getenv("KITTY_WINDOW_ID"))
}

// DetectFrom classifies a terminal from its TERM_PROGRAM, TERM, and
// KITTY_WINDOW_ID values. Split out from Detect for testability.
func DetectFrom(termProg, term, kittyWindowID string) Protocol {
	if kittyWindowID != "" {
		return ProtoKitty
	}
	lowerProg := strings.ToLower(termProg)
	if strings.Contains(lowerProg, "iterm") {
		return ProtoITerm2
	}
	if strings.Contains(lowerProg, "kitty") || strings.Contains(lowerProg, "wezterm") || strings.Contains(lowerProg, "ghostty") {
		return ProtoKitty
	}
	if strings.Contains(strings.ToLower(term), "kitty") {
		return ProtoKitty
	}
	return ProtoNone
}
