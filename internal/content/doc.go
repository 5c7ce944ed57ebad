// Package content holds the demo section bodies mounted by the shell. The
// coordinator treats them as opaque section.Content values.
package content
