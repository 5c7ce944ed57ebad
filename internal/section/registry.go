package section

import "fmt"

// Content is an opaque renderable unit mounted for a section.
type Content interface {
	Title() string
	Render(width, height int) string
}

// Providers carries one Content per section. A nil field is replaced by a
// placeholder so Registry.Get never returns nil.
type Providers struct {
	Overview  Content
	Analytics Content
	Plugins   Content
}

// Registry is the immutable mapping from ID to Content. It is safe to share
// across goroutines once built.
type Registry struct {
	entries [len(names)]Content
	def     ID
}

func NewRegistry(p Providers) *Registry {
	r := &Registry{def: Overview}
	for _, id := range All() {
		var c Content
		switch id {
		case Overview:
			c = p.Overview
		case Analytics:
			c = p.Analytics
		case Plugins:
			c = p.Plugins
		}
		if c == nil {
			c = placeholder{id: id}
		}
		r.entries[id.slot] = c
	}
	return r
}

// WithDefault returns a copy of r whose default section is id.
func (r *Registry) WithDefault(id ID) *Registry {
	cp := *r
	cp.def = id
	return &cp
}

func (r *Registry) Get(id ID) Content { return r.entries[id.slot] }

func (r *Registry) Default() ID { return r.def }

func (r *Registry) IDs() []ID { return All() }

func (r *Registry) Len() int { return len(r.entries) }

type placeholder struct{ id ID }

func (p placeholder) Title() string { return p.id.Title() }

func (p placeholder) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fmt.Sprintf("%s: no content", p.id.Title())
}
