package palette

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type pickedMsg struct{ id string }

func fixedSearch(query string) []Item {
	all := []Item{
		{ID: "go:analytics", Name: "Go to Analytics"},
		{ID: "go:plugins", Name: "Go to Plugins"},
		{ID: "app:quit", Name: "Quit"},
	}
	var out []Item
	for _, it := range all {
		if strings.Contains(strings.ToLower(it.Name), strings.ToLower(query)) {
			out = append(out, it)
		}
	}
	return out
}

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypingFiltersItems(t *testing.T) {
	s := New(fixedSearch, nil)
	if got := len(s.Items()); got != 3 {
		t.Fatalf("expected all items before typing, got %d", got)
	}
	typeText(s, "plug")
	if s.Query() != "plug" {
		t.Fatalf("unexpected query %q", s.Query())
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "go:plugins" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestQIsTypedNotHandled(t *testing.T) {
	s := New(fixedSearch, nil)
	if _, closed := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); closed {
		t.Fatalf("typing q must not close the palette")
	}
	if s.Query() != "q" {
		t.Fatalf("expected q in query, got %q", s.Query())
	}
}

func TestEnterSelectsHighlighted(t *testing.T) {
	s := New(fixedSearch, func(it Item) tea.Msg { return pickedMsg{id: it.ID} })
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	cmd, closed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed || cmd == nil {
		t.Fatalf("enter should close with a command")
	}
	if got := cmd().(pickedMsg).id; got != "go:plugins" {
		t.Fatalf("expected second item, got %q", got)
	}
}

func TestEscClosesAndResetClears(t *testing.T) {
	s := New(fixedSearch, nil)
	typeText(s, "quit")
	if _, closed := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !closed {
		t.Fatalf("esc should close")
	}
	s.Reset()
	if s.Query() != "" || len(s.Items()) != 3 {
		t.Fatalf("reset should clear query and restore items")
	}
}

func TestViewShowsTitleAndInput(t *testing.T) {
	s := New(fixedSearch, nil)
	out := s.View(60, 16)
	if !strings.Contains(out, "Command Palette") || !strings.Contains(out, "Go to Analytics") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}
