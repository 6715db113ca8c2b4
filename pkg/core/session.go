package core

import (
	"fmt"
	"log/slog"
	"strings"
)

// SessionState is the state of an EditSession.
type SessionState int

const (
	Viewing SessionState = iota
	Editing
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// MarshalText implements encoding.TextMarshaler.
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SessionState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "viewing":
		*s = Viewing
	case "editing":
		*s = Editing
	default:
		return fmt.Errorf("unknown session state %q", text)
	}
	return nil
}

// SessionSnapshot is a read-only copy of an EditSession.
type SessionSnapshot struct {
	State           SessionState `json:"state"`
	NoteID          string       `json:"note_id,omitempty"`
	Draft           Draft        `json:"draft"`
	ContentCaptured bool         `json:"content_captured"`
}

// EditSession stages an in-progress edit of a single note.
// Draft fields belong to the session and are invisible to the Store until Commit.
// It mirrors a unit of work: Start opens it, Commit applies it, Discard rolls it back.
type EditSession struct {
	store   *Store
	surface RichTextSurface
	logger  *slog.Logger

	open     bool
	noteID   string
	title    string
	content  string
	tags     []string
	captured bool
}

// NewEditSession creates a closed session committing into store.
// surface may be nil, in which case content must be provided with SetContent.
func NewEditSession(store *Store, surface RichTextSurface, logger *slog.Logger) *EditSession {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EditSession{store: store, surface: surface, logger: logger}
}

// Start opens the session on note, seeding the drafts from its committed values.
// A session already open on another note is discarded without committing.
func (e *EditSession) Start(note Note) {
	if e.open {
		if e.noteID != note.ID {
			e.logger.Debug("discarding open session for new target", "id", e.noteID, "target", note.ID)
		}
		e.Discard()
	}

	e.open = true
	e.noteID = note.ID
	e.title = note.Title
	e.content = note.Content
	e.tags = cloneTags(note.Tags)
	e.captured = false

	if e.surface != nil {
		e.surface.Reset(note.Content)
	}
	e.logger.Debug("edit session started", "id", note.ID)
}

// State returns Editing while the session is open.
func (e *EditSession) State() SessionState {
	if e.open {
		return Editing
	}
	return Viewing
}

// NoteID returns the id of the note being edited, or "" when closed.
func (e *EditSession) NoteID() string {
	return e.noteID
}

// Snapshot returns a copy of the session state.
func (e *EditSession) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		State:  e.State(),
		NoteID: e.noteID,
		Draft: Draft{
			Title:   e.title,
			Content: e.content,
			Tags:    cloneTags(e.tags),
		},
		ContentCaptured: e.captured,
	}
}

// SetTitle replaces the draft title.
func (e *EditSession) SetTitle(text string) {
	if !e.open {
		return
	}
	e.title = text
}

// SetContent replaces the draft content with serialized markup and marks it captured.
// With a surface attached the markup is loaded into the surface as well, since
// Commit reads the surface and would otherwise drop it.
func (e *EditSession) SetContent(markup string) {
	if !e.open {
		return
	}
	if e.surface != nil {
		e.surface.Reset(markup)
	}
	e.content = markup
	e.captured = true
}

// AddTag appends a trimmed tag to the drafts.
// Empty tags and exact duplicates are ignored.
func (e *EditSession) AddTag(tag string) {
	if !e.open {
		return
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range e.tags {
		if t == tag {
			return
		}
	}
	e.tags = append(e.tags, tag)
}

// RemoveTag removes an exact tag match from the drafts.
func (e *EditSession) RemoveTag(tag string) {
	if !e.open {
		return
	}
	for i, t := range e.tags {
		if t == tag {
			e.tags = append(e.tags[:i:i], e.tags[i+1:]...)
			return
		}
	}
}

// Commit writes the drafts into the store and closes the session.
//
// When a surface is attached its content is read at this point, so the commit always
// reflects what the surface shows now. On error the session stays open.
func (e *EditSession) Commit() (Note, error) {
	if !e.open {
		return Note{}, ErrNoSession
	}

	if e.surface != nil {
		e.content = e.surface.CurrentContent()
		e.captured = true
	}
	if !e.captured {
		return Note{}, fmt.Errorf("commit %s: %w", e.noteID, ErrNoContentCaptured)
	}

	n, err := e.store.CommitEdit(e.noteID, Draft{
		Title:   e.title,
		Content: e.content,
		Tags:    cloneTags(e.tags),
	})
	if err != nil {
		return Note{}, err
	}

	e.logger.Debug("edit session committed", "id", n.ID)
	e.close()
	return n, nil
}

// Discard closes the session and drops the drafts. Calling it on a closed session is a no-op.
func (e *EditSession) Discard() {
	if !e.open {
		return
	}
	e.logger.Debug("edit session discarded", "id", e.noteID)
	e.close()
}

func (e *EditSession) close() {
	e.open = false
	e.noteID = ""
	e.title = ""
	e.content = ""
	e.tags = nil
	e.captured = false
}
