package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m *Model) string {
	width := max(1, m.width)
	m.help.Width = width
	line := m.help.ShortHelpView(m.keys.HelpBindings(m.ActiveScope()))
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle).Render("No shortcuts")
	}
	return renderBar(footerStyle, width, line, colorMantle)
}

func RenderStatusBar(m *Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	msg = "[" + sectionTitle(m) + "] " + msg
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
