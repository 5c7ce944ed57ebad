package shell

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeShell   = "shell"
	scopeLoading = "shell:loading"
	scopePalette = "screen:palette"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// HelpBindings converts the bindings visible in scope to bubbles key bindings,
// one per action, for the footer.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	seen := map[string]bool{}
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// scopeMatch treats "*" as every scope and "shell" as a prefix match so shell
// bindings stay listed while loading.
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
		if s == scopeShell && strings.HasPrefix(scope, scopeShell+":") {
			return true
		}
	}
	return false
}
