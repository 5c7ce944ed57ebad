package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one command row.
type Item struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i Item) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i Item) Description() string { return i.Desc }
func (i Item) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// Screen is the palette body. The host decides when it is shown; Screen only
// reports when the user asked to close it.
type Screen struct {
	search   func(query string) []Item
	onSelect func(Item) tea.Msg
	input    textinput.Model
	list     list.Model
	query    string
}

func New(search func(query string) []Item, onSelect func(Item) tea.Msg) *Screen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &Screen{search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *Screen) Title() string { return "Command Palette" }

// Reset clears the query and re-runs the search. The host calls it each time
// the overlay opens.
func (s *Screen) Reset() tea.Cmd {
	s.input.Reset()
	s.query = ""
	s.refresh()
	s.list.Select(0)
	return s.input.Focus()
}

// Update handles a message while the palette is open and reports whether it
// asked to close.
func (s *Screen) Update(msg tea.Msg) (tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(Item)
			if !ok {
				return nil, true
			}
			if s.onSelect == nil {
				return nil, true
			}
			return func() tea.Msg { return s.onSelect(it) }, true
		case "up", "ctrl+p":
			s.list.CursorUp()
			return nil, false
		case "down", "ctrl+n":
			s.list.CursorDown()
			return nil, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := strings.TrimSpace(s.input.Value()); v != s.query {
		s.query = v
		s.refresh()
		s.list.Select(0)
	}
	return cmd, false
}

func (s *Screen) refresh() {
	items := s.search(s.query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
}

// Items returns the rows currently listed.
func (s *Screen) Items() []Item {
	out := make([]Item, 0, len(s.list.Items()))
	for _, it := range s.list.Items() {
		if item, ok := it.(Item); ok {
			out = append(out, item)
		}
	}
	return out
}

func (s *Screen) Query() string { return s.query }

func (s *Screen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(4, height-3))
	s.input.Width = max(10, width-4)
	return s.Title() + "\n" + s.input.View() + "\n" + s.list.View()
}
