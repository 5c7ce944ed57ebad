package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hubdash/internal/widgets"
)

// Metric is one overview card.
type Metric struct {
	Label string
	Value string
	Delta string
}

// Overview renders a two-row widget grid: metric cards over a task list.
type Overview struct {
	Metrics []Metric
	Tasks   []string
}

func NewOverview() Overview {
	return Overview{
		Metrics: []Metric{
			{Label: "Active users", Value: "2,847", Delta: "+12%"},
			{Label: "Requests", Value: "184k", Delta: "+4%"},
			{Label: "Error rate", Value: "0.21%", Delta: "-0.05"},
		},
		Tasks: []string{
			"Review plugin submissions",
			"Rotate staging credentials",
			"Publish weekly analytics digest",
		},
	}
}

func (o Overview) Title() string { return "Overview" }

func (o Overview) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	accents := []lipgloss.TerminalColor{colorBlue, colorGreen, colorPeach}
	cards := make([]widgets.Widget, 0, len(o.Metrics))
	for i, m := range o.Metrics {
		delta := lipgloss.NewStyle().Foreground(colorMuted).Render(m.Delta)
		value := lipgloss.NewStyle().Foreground(colorText).Bold(true).Render(m.Value)
		cards = append(cards, widgets.Box{
			Title:   m.Label,
			Content: value + " " + delta,
			Accent:  accents[i%len(accents)],
		})
	}
	var tasks strings.Builder
	for i, t := range o.Tasks {
		if i > 0 {
			tasks.WriteByte('\n')
		}
		fmt.Fprintf(&tasks, "%d. %s", i+1, t)
	}
	grid := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.HStack{Widgets: cards, Gap: 1},
			widgets.Box{Title: "Tasks", Content: tasks.String(), Accent: colorMauve},
		},
	}
	return grid.Render(width, height)
}
