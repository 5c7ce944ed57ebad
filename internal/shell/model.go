package shell

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/palette"
	"github.com/jask/hubdash/internal/viewstate"
)

// TraceExporter writes the transition trace into dir and returns the file path.
type TraceExporter interface {
	ExportFile(dir string) (string, error)
}

type Option func(*Model)

func WithExporter(exp TraceExporter, dir string) Option {
	return func(m *Model) {
		m.exporter = exp
		m.traceDir = dir
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the root tea.Model. It is used through a pointer so the palette's
// search callback sees the live command state.
type Model struct {
	width     int
	height    int
	coord     *viewstate.Coordinator
	keys      *KeyRegistry
	commands  *CommandRegistry
	palette   *palette.Screen
	spinner   spinner.Model
	help      help.Model
	exporter  TraceExporter
	traceDir  string
	status    string
	statusErr bool
	quitting  bool
	logger    *slog.Logger
}

func NewModel(coord *viewstate.Coordinator, keys *KeyRegistry, commands *CommandRegistry, opts ...Option) *Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	m := &Model{
		coord:    coord,
		keys:     keys,
		commands: commands,
		spinner:  sp,
		help:     h,
		status:   "Loading",
		width:    100,
		height:   32,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(m)
	}
	m.palette = palette.New(m.searchPalette, func(it palette.Item) tea.Msg {
		return CommandExecuteMsg{CommandID: it.ID}
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.coord.Start(), m.spinner.Tick)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) ActiveScope() string {
	switch {
	case m.coord.OverlayOpen():
		return scopePalette
	case m.coord.Loading() == viewstate.Loading:
		return scopeLoading
	default:
		return scopeShell
	}
}

func (m *Model) Quitting() bool { return m.quitting }

func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }

func (m *Model) searchPalette(query string) []palette.Item {
	results := m.commands.Search(query, m)
	items := make([]palette.Item, 0, len(results))
	for _, r := range results {
		items = append(items, palette.Item{
			ID:       r.CommandID,
			Name:     r.Name,
			Desc:     r.Desc,
			Disabled: r.Disabled,
			Reason:   r.Reason,
		})
	}
	return items
}

// quit tears the coordinator down before the program exits so no timer
// message is delivered into a dead model.
func (m *Model) quit() tea.Cmd {
	m.coord.Teardown()
	m.quitting = true
	return tea.Quit
}
