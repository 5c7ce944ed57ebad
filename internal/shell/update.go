package shell

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/section"
	"github.com/jask/hubdash/internal/viewstate"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case CommandExecuteMsg:
		if m.quitting {
			return m, nil
		}
		m.logger.Debug("command", "id", msg.CommandID)
		return m, m.commands.Execute(msg.CommandID, m)
	case viewstate.ReadyMsg:
		wasLoading := m.coord.Loading() == viewstate.Loading
		cmd := m.coord.Update(msg)
		if wasLoading && m.coord.Loading() == viewstate.Ready {
			m.SetStatus("Ready")
		}
		return m, cmd
	case viewstate.PhaseElapsedMsg:
		return m, m.coord.Update(msg)
	case spinner.TickMsg:
		if m.quitting || m.coord.Gate().Visible() == viewstate.Ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.coord.OverlayOpen() {
		cmd, _ := m.palette.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.quitting {
		return nil
	}
	scope := m.ActiveScope()
	if m.keys.IsAction(msg, actionTogglePalette, scope) {
		return m.togglePalette()
	}
	if scope == scopePalette {
		cmd, closed := m.palette.Update(msg)
		if closed {
			return tea.Batch(m.coord.CloseOverlay(), cmd)
		}
		return cmd
	}
	if m.keys.IsAction(msg, actionQuit, scope) {
		return m.quit()
	}
	current := m.coord.Current()
	switch {
	case m.keys.IsAction(msg, actionNextSection, scope):
		return m.coord.Select(current.Next())
	case m.keys.IsAction(msg, actionPrevSection, scope):
		return m.coord.Select(current.Prev())
	}
	for _, id := range section.All() {
		if m.keys.IsAction(msg, sectionAction(id), scope) {
			return m.coord.Select(id)
		}
	}
	return nil
}

func (m *Model) togglePalette() tea.Cmd {
	cmd := m.coord.ToggleOverlay()
	if m.coord.OverlayOpen() {
		return tea.Batch(cmd, m.palette.Reset())
	}
	return cmd
}
