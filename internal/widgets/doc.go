// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, popup compositor, motion offsets)
//
// Not allowed here:
// - key handling, view-state transitions, or section policy
package widgets
