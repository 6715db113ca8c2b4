package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes int      `json:"notes"`
	IDs   []string `json:"ids"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	ids := make([]string, len(s.notes))
	for i, n := range s.notes {
		ids[i] = n.ID
	}
	return StoreState{
		Notes: len(s.notes),
		IDs:   ids,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

// ControllerState exposes internal state for observability.
type ControllerState struct {
	SelectedID   string          `json:"selected_id,omitempty"`
	SearchQuery  string          `json:"search_query,omitempty"`
	TagFilters   []string        `json:"tag_filters,omitempty"`
	VisibleNotes int             `json:"visible_notes"`
	Session      SessionSnapshot `json:"session"`
	Listeners    int             `json:"listeners"`
	StoreType    string          `json:"store_type"`
	Store        any             `json:"store"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	return ControllerState{
		SelectedID:   c.selectedID,
		SearchQuery:  c.query,
		TagFilters:   c.ActiveTagFilters(),
		VisibleNotes: len(c.VisibleNotes()),
		Session:      c.session.Snapshot(),
		Listeners:    len(c.listeners),
		StoreType:    c.store.ComponentType(),
		Store:        c.store.State(),
	}
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "controller"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
