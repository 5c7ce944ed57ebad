// Package shell is the Bubble Tea host: it owns the terminal, routes keys to the
// view-state coordinator and renders whatever the coordinator reports as
// visible.
//
// Allowed here:
// - key routing, command registry, and frame composition
// - translating user intent into coordinator calls
//
// Not allowed here:
// - loading, selection, overlay, or transition rules (viewstate)
// - section body rendering (content)
package shell
