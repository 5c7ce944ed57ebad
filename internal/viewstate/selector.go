package viewstate

import "github.com/jask/hubdash/internal/section"

// Selector owns the active section.
type Selector struct {
	current section.ID
}

func NewSelector(initial section.ID) *Selector {
	return &Selector{current: initial}
}

func (s *Selector) Current() section.ID { return s.current }

// Select reports whether id differs from the active section. Re-selecting the
// active section changes nothing.
func (s *Selector) Select(id section.ID) bool {
	if id == s.current {
		return false
	}
	s.current = id
	return true
}
