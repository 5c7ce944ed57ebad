package shell

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jask/hubdash/internal/section"
)

const (
	actionQuit          = "quit"
	actionTogglePalette = "toggle-palette"
	actionNextSection   = "next-section"
	actionPrevSection   = "prev-section"
	actionClose         = "close"
	actionSelect        = "select"
)

func sectionAction(id section.ID) string {
	return fmt.Sprintf("section-%d", id.Index()+1)
}

func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeShell}},
		{Keys: []string{"ctrl+k"}, Action: actionTogglePalette, Description: "commands", Scopes: []string{"*"}},
	}
	for _, id := range section.All() {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprint(id.Index() + 1)},
			Action:      sectionAction(id),
			Description: strings.ToLower(id.Title()),
			Scopes:      []string{scopeShell},
		})
	}
	return append(bindings,
		KeyBinding{Keys: []string{"tab"}, Action: actionNextSection, Description: "next", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"shift+tab"}, Action: actionPrevSection, Description: "prev", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopePalette}},
		KeyBinding{Keys: []string{"enter"}, Action: actionSelect, Description: "run", Scopes: []string{scopePalette}},
	)
}

// ApplyActionKeybindings replaces the keys of every action named in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        slices.Clone(b.Keys),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      slices.Clone(b.Scopes),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = slices.Clone(keys)
		}
		out = append(out, next)
	}
	return out
}

// UnknownActions lists configured actions that no binding carries, sorted.
func UnknownActions(bindings []KeyBinding, actionKeys map[string][]string) []string {
	known := map[string]bool{}
	for _, b := range bindings {
		known[b.Action] = true
	}
	var out []string
	for action := range actionKeys {
		if !known[action] {
			out = append(out, action)
		}
	}
	slices.Sort(out)
	return out
}
