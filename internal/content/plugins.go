package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/hubdash/internal/widgets"
)

// Plugin is one gallery entry.
type Plugin struct {
	Name      string
	Summary   string
	Installed bool
}

type Plugins struct {
	Items []Plugin
}

func NewPlugins() Plugins {
	return Plugins{Items: []Plugin{
		{Name: "Metrics Exporter", Summary: "Ships dashboard counters to a collector", Installed: true},
		{Name: "Audit Trail", Summary: "Keeps a signed history of admin actions", Installed: true},
		{Name: "Slack Alerts", Summary: "Posts threshold breaches to a channel"},
		{Name: "Feature Flags", Summary: "Toggles rollouts per environment"},
	}}
}

func (p Plugins) Title() string { return "Plugins" }

func (p Plugins) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	on := lipgloss.NewStyle().Foreground(colorGreen).Render("installed")
	off := lipgloss.NewStyle().Foreground(colorOverlay).Render("available")
	name := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	inner := max(1, width-4)
	lines := make([]string, 0, len(p.Items)*2)
	for _, it := range p.Items {
		status := off
		if it.Installed {
			status = on
		}
		lines = append(lines,
			ansi.Truncate(fmt.Sprintf("%s  %s", name.Render(it.Name), status), inner, ""),
			ansi.Truncate("  "+it.Summary, inner, "…"),
		)
	}
	box := widgets.Box{Title: "Plugin Gallery", Content: strings.Join(lines, "\n"), Accent: colorMauve}
	return box.Render(width, height)
}
