package widgets

import "github.com/charmbracelet/lipgloss"

type Box struct {
	Title   string
	Content string
	Accent  lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	title := "[" + b.Title + "]"
	if b.Accent != nil {
		style = style.BorderForeground(b.Accent)
		title = lipgloss.NewStyle().Foreground(b.Accent).Bold(true).Render(title)
	}
	return style.Render(title + "\n" + b.Content)
}
