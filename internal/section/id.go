package section

import "strings"

// ID identifies one dashboard section. The only values that exist outside this
// package are the exported ones below; the zero value is Overview.
type ID struct {
	slot uint8
}

var (
	Overview  = ID{slot: 0}
	Analytics = ID{slot: 1}
	Plugins   = ID{slot: 2}
)

var names = [...]string{"overview", "analytics", "plugins"}

var titles = [...]string{"Overview", "Analytics", "Plugins"}

// All returns every section in registry order.
func All() []ID {
	return []ID{Overview, Analytics, Plugins}
}

// Parse maps a section name (as written in config or typed in the palette)
// onto its ID.
func Parse(s string) (ID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return ID{slot: uint8(i)}, true
		}
	}
	return ID{}, false
}

func (id ID) String() string { return names[id.slot] }

// Title is the human label used in the header and the palette.
func (id ID) Title() string { return titles[id.slot] }

// Index is the zero-based registry position.
func (id ID) Index() int { return int(id.slot) }

// Next returns the following section, wrapping around.
func (id ID) Next() ID {
	return ID{slot: uint8((int(id.slot) + 1) % len(names))}
}

// Prev returns the preceding section, wrapping around.
func (id ID) Prev() ID {
	return ID{slot: uint8((int(id.slot) + len(names) - 1) % len(names))}
}
