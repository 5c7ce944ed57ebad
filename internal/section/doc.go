// Package section defines the closed set of dashboard sections and the
// registry that maps each of them to its content.
//
// Allowed here:
// - the section identifier type and its exported values
// - the immutable section registry and the Content contract
//
// Not allowed here:
// - selection state, transitions, or key handling (viewstate, shell)
// - concrete section content (content)
package section
