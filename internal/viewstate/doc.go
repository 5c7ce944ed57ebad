// Package viewstate is the shell's state coordinator: the loading gate, the
// active section, the command overlay, and the per-axis transition tracks
// that animate changes between them.
//
// Allowed here:
// - state owners (Loader, Selector, Overlay) and their gating rules
// - transition sequencing, token minting and supersession
// - timer scheduling as tea.Cmd values
//
// Not allowed here:
// - rendering, styles, or key bindings (shell, widgets)
// - section content (content)
//
// All methods run on the Bubble Tea update goroutine; nothing in this package
// is safe for concurrent use.
package viewstate
