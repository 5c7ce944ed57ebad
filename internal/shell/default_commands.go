package shell

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/section"
)

var errNoJournal = errors.New("transition journal is not configured")

func DefaultCommands() []Command {
	cmds := make([]Command, 0, len(section.All())+2)
	for _, id := range section.All() {
		cmds = append(cmds, Command{
			ID:          "section:" + id.String(),
			Name:        "Go to " + id.Title(),
			Description: fmt.Sprintf("Show the %s section", id.String()),
			Execute: func(m *Model) tea.Cmd {
				return m.coord.Select(id)
			},
			Disabled: func(m *Model) (bool, string) {
				if m.coord.Current() == id {
					return true, "already active"
				}
				return false, ""
			},
		})
	}
	return append(cmds,
		Command{
			ID:          "trace:export",
			Name:        "Export transition trace",
			Description: "Write the recorded transitions as YAML",
			Execute: func(m *Model) tea.Cmd {
				path, err := m.exporter.ExportFile(m.traceDir)
				if err != nil {
					return ErrorCmd(fmt.Errorf("export trace: %w", err))
				}
				return StatusCmd("Trace written to " + path)
			},
			Disabled: func(m *Model) (bool, string) {
				if m.exporter == nil {
					return true, errNoJournal.Error()
				}
				return false, ""
			},
		},
		Command{
			ID:          "app:quit",
			Name:        "Quit",
			Description: "Leave hubdash",
			Execute: func(m *Model) tea.Cmd {
				return m.quit()
			},
		},
	)
}
