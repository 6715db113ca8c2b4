// Package smartnotes is the Composition Root for the Smart Notes application.
//
// It wires the core state machine (Store, EditSession and Controller) with a
// rich-text surface and a configuration using functional options.
//
// Philosophy:
//
// Smart Notes is a single-user, in-memory note collection. Every user action is
// an intent sent to the Controller, which owns the selection, the search query,
// the tag filters and at most one edit session. Presentation layers (the terminal
// UI, the line shell) never mutate notes directly; they re-derive their view from
// the Controller after each intent.
//
// Features:
//
//   - **Explicit edit sessions**: drafts live apart from committed notes until saved.
//   - **Combined filtering**: a case-insensitive query and AND-ed tag filters.
//   - **Pluggable surface**: any core.RichTextSurface can produce note content.
//   - **Seed notes**: a welcome note by default, configurable in .smartnotes.yaml.
//   - **Observable**: the Controller implements introspection.Introspectable and emits events.
//
// Usage:
//
//	// Initialize a controller with functional options
//	ctrl := smartnotes.New(
//		smartnotes.WithSurface(surface.NewMarkup("")),
//		smartnotes.WithLogger(logger),
//	)
//
//	// Create a note, edit it, save it
//	ctrl.CreateNote()
//	ctrl.SetDraftTitle("Groceries")
//	note, err := ctrl.Save()
package smartnotes
