package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/hubdash/internal/viewstate"
	"github.com/jask/hubdash/internal/widgets"
)

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width, height := max(1, m.width), max(1, m.height)
	gate := m.coord.Gate()
	if gate.Visible() == viewstate.Loading {
		screen := m.withOverlay(m.renderGate(gate, width, height), width, height)
		return appStyle.Width(width).MaxWidth(width).Render(screen)
	}

	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	body := m.renderBody(width, bodyHeight)
	if gate.Phase == viewstate.PhaseEntering {
		body = widgets.Fade(body)
	}
	body = m.withOverlay(body, width, bodyHeight)
	view := strings.Join([]string{header, status, widgets.FitHeight(body, bodyHeight), footer}, "\n")
	return appStyle.Width(width).MaxWidth(width).Render(widgets.FitHeight(view, height))
}

func (m *Model) renderGate(gate viewstate.TrackState[viewstate.LoadingState], width, height int) string {
	spin := m.spinner.View() + " " + loadingStyle.Render("Loading dashboard")
	if gate.Phase == viewstate.PhaseExiting {
		spin = widgets.Fade(spin)
	}
	return widgets.Center(spin, width, height)
}

func (m *Model) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	sec := m.coord.Section()
	timing := m.coord.Timings().Section
	body := m.coord.VisibleContent().Render(width, height)
	switch sec.Phase {
	case viewstate.PhaseHold:
		body = widgets.Fade(body)
	case viewstate.PhaseExiting:
		body = widgets.Fade(widgets.Shift(body, timing.ExitOffset, height))
	case viewstate.PhaseEntering:
		body = widgets.Fade(widgets.Shift(body, timing.EnterOffset, height))
	}
	return body
}

// withOverlay layers the palette over base in every gate phase.
func (m *Model) withOverlay(base string, width, height int) string {
	ov := m.coord.Overlay()
	if height <= 0 || !ov.Visible() {
		return base
	}
	popup := m.palette.View(max(20, min(72, width-12)), max(8, height-8))
	if ov.Active() {
		popup = widgets.Fade(popup)
	}
	return widgets.RenderPopup(base, popup, width, height, widgets.CardStyle(colorAccent))
}

func renderHeader(m *Model) string {
	reg := m.coord.Registry()
	current := m.coord.Current()
	tabs := make([]string, 0, reg.Len())
	for _, id := range reg.IDs() {
		label := fmt.Sprintf("%d:%s", id.Index()+1, reg.Get(id).Title())
		if id == current {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("hubdash")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

// sectionTitle names the section currently owning the body, for the status bar.
func sectionTitle(m *Model) string {
	return m.coord.VisibleContent().Title()
}
