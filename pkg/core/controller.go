package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Controller composes the Store, the view filter and the EditSession.
//
// It owns the selection and filter state and keeps both consistent with the store:
//   - selecting a note discards any open session without committing it;
//   - deleting the selected note clears the selection and the session in the same call;
//   - a new note is selected and opened for editing immediately.
//
// Controller is not safe for concurrent use. Callers serialise intents, one at a time.
type Controller struct {
	store   *Store
	session *EditSession
	surface RichTextSurface
	logger  *slog.Logger
	now     func() time.Time

	selectedID string
	query      string
	tagFilters []string

	listeners map[int]func(Event)
	nextID    int
}

// NewController creates a Controller over store.
// surface may be nil for callers that provide content through SetDraftContent.
func NewController(store *Store, surface RichTextSurface, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:     store,
		session:   NewEditSession(store, surface, logger),
		surface:   surface,
		logger:    logger,
		now:       store.opts.Now,
		listeners: make(map[int]func(Event)),
	}
}

// Store returns the underlying store.
func (c *Controller) Store() *Store {
	return c.store
}

// Subscribe registers fn to be called after every completed mutation.
// It returns a function that removes the registration.
func (c *Controller) Subscribe(fn func(Event)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Controller) emit(t EventType, id string) {
	e := Event{Type: t, ID: id, Timestamp: c.now().Unix()}
	for _, fn := range c.listeners {
		fn(e)
	}
}

// --- Intents ---

// Select makes id the selected note, leaving edit mode first.
// Unsaved drafts are dropped: navigating away discards changes.
func (c *Controller) Select(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	c.session.Discard()
	c.selectedID = id
	c.logger.Debug("note selected", "id", id)
	c.emit(EventSelect, id)
	return nil
}

// ClearSelection leaves edit mode and selects nothing.
func (c *Controller) ClearSelection() {
	c.session.Discard()
	c.selectedID = ""
	c.emit(EventSelect, "")
}

// CreateNote creates a note, selects it and opens it for editing.
func (c *Controller) CreateNote() Note {
	n := c.store.Create()
	c.session.Discard()
	c.selectedID = n.ID
	c.session.Start(n)

	c.logger.Info("note created", "id", n.ID)
	c.emit(EventCreate, n.ID)
	return n
}

// DeleteNote removes a note. If it was selected, the selection and any open
// session go with it. It reports whether a note was removed; an unknown id is
// ignored.
func (c *Controller) DeleteNote(id string) bool {
	if !c.store.Delete(id) {
		c.logger.Debug("delete of unknown note ignored", "id", id)
		return false
	}
	if c.selectedID == id || c.session.NoteID() == id {
		c.session.Discard()
		c.selectedID = ""
	}
	c.logger.Info("note deleted", "id", id)
	c.emit(EventDelete, id)
	return true
}

// StartEdit opens an edit session on the selected note.
func (c *Controller) StartEdit() error {
	n, ok := c.SelectedNote()
	if !ok {
		return ErrNoSelection
	}
	if c.session.State() == Editing && c.session.NoteID() == n.ID {
		return nil
	}
	c.session.Start(n)
	c.emit(EventEdit, n.ID)
	return nil
}

// Save commits the open session.
//
// If the note vanished the orphaned session is discarded and the selection cleared.
// If no content was captured the session stays open so the user can retry.
func (c *Controller) Save() (Note, error) {
	id := c.session.NoteID()
	n, err := c.session.Commit()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.logger.Warn("committing orphaned session", "id", id, "error", err)
			c.session.Discard()
			if c.selectedID == id {
				c.selectedID = ""
			}
			c.emit(EventDiscard, id)
		}
		return Note{}, err
	}
	c.logger.Info("note saved", "id", n.ID, "title", n.Title)
	c.emit(EventModify, n.ID)
	return n, nil
}

// Discard leaves edit mode without committing.
func (c *Controller) Discard() {
	if c.session.State() != Editing {
		return
	}
	id := c.session.NoteID()
	c.session.Discard()
	c.emit(EventDiscard, id)
}

// SetDraftTitle replaces the draft title of the open session.
func (c *Controller) SetDraftTitle(text string) { c.session.SetTitle(text) }

// SetDraftContent replaces the draft content of the open session. When a surface
// is attached the markup replaces the surface content too, so Save keeps it.
func (c *Controller) SetDraftContent(markup string) { c.session.SetContent(markup) }

// AddDraftTag adds a tag to the open session.
func (c *Controller) AddDraftTag(tag string) { c.session.AddTag(tag) }

// RemoveDraftTag removes a tag from the open session.
func (c *Controller) RemoveDraftTag(tag string) { c.session.RemoveTag(tag) }

// Format forwards a formatting command to the attached surface while editing.
func (c *Controller) Format(cmd FormatCommand) error {
	if c.session.State() != Editing {
		return ErrNoSession
	}
	if c.surface == nil {
		return nil
	}
	return c.surface.Apply(cmd)
}

// SetSearchQuery replaces the free-text query. An empty query disables search.
func (c *Controller) SetSearchQuery(q string) {
	c.query = q
	c.emit(EventFilter, "")
}

// ToggleTagFilter adds tag to the active filters, or removes it if already active.
func (c *Controller) ToggleTagFilter(tag string) {
	for i, t := range c.tagFilters {
		if t == tag {
			c.tagFilters = append(c.tagFilters[:i:i], c.tagFilters[i+1:]...)
			c.emit(EventFilter, "")
			return
		}
	}
	c.tagFilters = append(c.tagFilters, tag)
	c.emit(EventFilter, "")
}

// ClearFilters resets both the search query and the tag filters.
func (c *Controller) ClearFilters() {
	c.query = ""
	c.tagFilters = nil
	c.emit(EventFilter, "")
}

// --- Views ---

// VisibleNotes returns the notes passing the current query and tag filters.
func (c *Controller) VisibleNotes() []Note {
	return Filter(c.store.List(), c.query, c.tagFilters)
}

// SelectedNote returns the committed state of the selected note.
func (c *Controller) SelectedNote() (Note, bool) {
	if c.selectedID == "" {
		return Note{}, false
	}
	return c.store.Get(c.selectedID)
}

// EditSessionState returns a snapshot of the edit session.
func (c *Controller) EditSessionState() SessionSnapshot {
	return c.session.Snapshot()
}

// AllTags returns the tag vocabulary of the whole collection.
func (c *Controller) AllTags() []string {
	return AllTags(c.store.List())
}

// TagsMatching returns the tags of the collection matching a glob pattern.
func (c *Controller) TagsMatching(pattern string) ([]string, error) {
	return TagsMatching(c.store.List(), pattern)
}

// SearchQuery returns the current search query.
func (c *Controller) SearchQuery() string {
	return c.query
}

// ActiveTagFilters returns a copy of the active tag filters.
func (c *Controller) ActiveTagFilters() []string {
	return cloneTags(c.tagFilters)
}
