// Package palette is the command palette overlay: a query input over a ranked
// command list.
//
// Allowed here:
// - palette input handling and presentation
//
// Not allowed here:
// - command registration, ranking, or execution (shell)
// - deciding when the overlay is open (viewstate)
package palette
