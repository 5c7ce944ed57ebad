package content

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hubdash/internal/widgets"
)

const (
	analyticsBuckets = 30
	analyticsBucket  = 2 * time.Second
	minChartWidth    = 12
	minChartHeight   = 5
)

// ActivitySource reports bucketed transition counts ending at now.
type ActivitySource interface {
	Activity(now time.Time, bucket time.Duration, buckets int) ([]time.Time, []float64)
}

// Analytics charts shell activity over the last minute.
type Analytics struct {
	source ActivitySource
	now    func() time.Time
}

func NewAnalytics(source ActivitySource, now func() time.Time) Analytics {
	if now == nil {
		now = time.Now
	}
	return Analytics{source: source, now: now}
}

func (a Analytics) Title() string { return "Analytics" }

func (a Analytics) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := a.chart(max(1, width-4), max(1, height-3))
	box := widgets.Box{Title: "Transitions / 2s", Content: body, Accent: colorPeach}
	return box.Render(width, height)
}

func (a Analytics) chart(width, height int) string {
	muted := lipgloss.NewStyle().Foreground(colorOverlay)
	if a.source == nil {
		return muted.Render("No activity source.")
	}
	if width < minChartWidth || height < minChartHeight {
		return muted.Render("Too small for chart.")
	}
	times, values := a.source.Activity(a.now(), analyticsBucket, analyticsBuckets)
	if len(times) == 0 {
		return muted.Render("No activity yet.")
	}
	maxVal := 1.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	start, end := times[0], times[len(times)-1]

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorAxis)
	chart.LabelStyle = muted
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)
	for i, t := range times {
		chart.Push(tslc.TimePoint{Time: t, Value: values[i]})
	}
	chart.DrawBraille()
	return chart.View()
}
