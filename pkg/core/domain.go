package core

import "fmt"

// EventType represents the kind of state change performed by the Controller.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventDelete  EventType = "DELETE"
	EventSelect  EventType = "SELECT"
	EventEdit    EventType = "EDIT"
	EventDiscard EventType = "DISCARD"
	EventFilter  EventType = "FILTER"
)

// Event represents a completed mutation.
// It carries no state; listeners read the views they need from the Controller.
type Event struct {
	Type      EventType
	ID        string // Note id, empty for filter changes and cleared selections
	Timestamp int64  // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
