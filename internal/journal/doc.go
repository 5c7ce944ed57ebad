// Package journal records the coordinator's phase events: an in-memory ring
// for the UI, an optional sqlite copy written off the update goroutine, and a
// YAML trace export.
package journal
