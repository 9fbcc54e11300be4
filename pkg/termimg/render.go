// ABOUTME: Terminal graphics escape generation for Kitty and iTerm2 protocols
// ABOUTME: Chunked base64 transmission with cell-sized placement; text placeholder fallback

package termimg

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const kittyChunkSize = 4096

// Render produces terminal-ready output lines for image data placed in the
// given cell rectangle, using the requested protocol. For ProtoNone a text
// placeholder box is returned so layouts stay stable on dumb terminals.
func Render(data []byte, proto Protocol, rect Rect) ([]string, error) {
	if rect.Empty() {
		return nil, fmt.Errorf("empty placement rectangle")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	switch proto {
	case ProtoKitty:
		return renderKitty(data, rect), nil
	case ProtoITerm2:
		return []string{renderITerm2(data, rect)}, nil
	default:
		return RenderHalfBlock(data, rect), nil
	}
}

// renderKitty encodes the image with the Kitty graphics protocol,
// chunking the base64 payload and sizing placement to rect cells.
func renderKitty(data []byte, rect Rect) []string {
	encoded := base64.StdEncoding.EncodeToString(data)
	ctrl := fmt.Sprintf("f=100,a=T,c=%d,r=%d", rect.Cols, rect.Rows)

	if len(encoded) <= kittyChunkSize {
		return []string{fmt.Sprintf("\x1b_G%s,m=0;%s\x1b\\", ctrl, encoded)}
	}

	var lines []string
	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := i + kittyChunkSize
		if end > len(encoded) {
			end = len(encoded)
		}
		chunk := encoded[i:end]
		more := 1
		if end == len(encoded) {
			more = 0
		}
		if i == 0 {
			lines = append(lines, fmt.Sprintf("\x1b_G%s,m=%d;%s\x1b\\", ctrl, more, chunk))
		} else {
			lines = append(lines, fmt.Sprintf("\x1b_Gm=%d;%s\x1b\\", more, chunk))
		}
	}
	return lines
}

// renderITerm2 encodes the image with the iTerm2 OSC 1337 protocol,
// sizing placement to rect cells.
func renderITerm2(data []byte, rect Rect) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("\x1b]1337;File=size=%d;width=%d;height=%d;inline=1:%s\a",
		len(data), rect.Cols, rect.Rows, encoded)
}

// Placeholder renders a bordered text box filling rect, labeled in the
// middle line. Used when no graphics protocol is available.
func Placeholder(rect Rect, label string) []string {
	if rect.Empty() {
		return nil
	}
	if rect.Cols < 2 || rect.Rows < 2 {
		return []string{strings.Repeat("░", rect.Cols)}
	}

	inner := rect.Cols - 2
	top := "┌" + strings.Repeat("─", inner) + "┐"
	bottom := "└" + strings.Repeat("─", inner) + "┘"
	blank := "│" + strings.Repeat(" ", inner) + "│"

	lines := make([]string, 0, rect.Rows)
	lines = append(lines, top)
	for i := 1; i < rect.Rows-1; i++ {
		if i == rect.Rows/2 && len(label) <= inner {
			pad := inner - len(label)
			left := pad / 2
			lines = append(lines, "│"+strings.Repeat(" ", left)+label+strings.Repeat(" ", pad-left)+"│")
			continue
		}
		lines = append(lines, blank)
	}
	lines = append(lines, bottom)
	return lines
}
