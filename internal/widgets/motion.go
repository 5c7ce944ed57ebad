package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shift moves content vertically by rows inside a block of the given height.
// Positive rows push content down, negative rows pull it up and clip the top.
func Shift(s string, rows, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	switch {
	case rows > 0:
		pad := make([]string, min(rows, height))
		lines = append(pad, lines...)
	case rows < 0:
		if -rows >= len(lines) {
			lines = nil
		} else {
			lines = lines[-rows:]
		}
	}
	return FitHeight(strings.Join(lines, "\n"), height)
}

// Fade renders s dimmed.
func Fade(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// Center places s in the middle of a width x height block.
func Center(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	return strings.Join(splitToLines(s, height), "\n")
}
