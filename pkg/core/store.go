package core

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTitle   = "Untitled Note"
	DefaultContent = "<p>Start writing...</p>"
)

// StoreOptions configures a Store. Zero values fall back to the defaults.
type StoreOptions struct {
	Title   string           // Title given to new notes
	Content string           // Placeholder content given to new notes
	Now     func() time.Time // Clock, time.Now when nil
	NewID   func() string    // Id generator, uuid v4 when nil
	Logger  *slog.Logger
}

// Store owns the authoritative ordered collection of notes.
// Notes are kept most-recent-first. Every write goes through Create, CreateFrom,
// CommitEdit or Delete; readers only ever receive copies.
type Store struct {
	notes  []Note
	index  map[string]int // id -> position in notes
	opts   StoreOptions
	logger *slog.Logger
}

// NewStore creates an empty Store.
func NewStore(opts StoreOptions) *Store {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Content == "" {
		opts.Content = DefaultContent
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		index:  make(map[string]int),
		opts:   opts,
		logger: logger,
	}
}

// Create inserts a note with the default title and placeholder content at the front
// of the collection and returns it.
func (s *Store) Create() Note {
	return s.CreateFrom(Draft{Title: s.opts.Title, Content: s.opts.Content})
}

// CreateFrom inserts a note built from d at the front of the collection.
func (s *Store) CreateFrom(d Draft) Note {
	now := s.opts.Now()
	n := Note{
		ID:        s.uniqueID(),
		Title:     d.Title,
		Content:   d.Content,
		Tags:      normalizeTags(d.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notes = append([]Note{n}, s.notes...)
	s.reindex()

	s.logger.Debug("note created", "id", n.ID, "title", n.Title)
	return n.Clone()
}

// Delete removes the note with the given id.
// It reports whether a note was removed; a missing id is not an error.
func (s *Store) Delete(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.notes = append(s.notes[:pos], s.notes[pos+1:]...)
	s.reindex()

	s.logger.Debug("note deleted", "id", id)
	return true
}

// CommitEdit replaces the title, content and tags of the note and stamps UpdatedAt.
// CreatedAt and every other note are left untouched.
func (s *Store) CommitEdit(id string, d Draft) (Note, error) {
	pos, ok := s.index[id]
	if !ok {
		return Note{}, fmt.Errorf("commit %s: %w", id, ErrNotFound)
	}

	n := &s.notes[pos]
	now := s.opts.Now()
	if now.Before(n.CreatedAt) {
		now = n.CreatedAt
	}
	n.Title = d.Title
	n.Content = d.Content
	n.Tags = normalizeTags(d.Tags)
	n.UpdatedAt = now

	s.logger.Debug("note updated", "id", id, "title", n.Title, "tags", n.Tags)
	return n.Clone(), nil
}

// Get returns a copy of the note with the given id.
func (s *Store) Get(id string) (Note, bool) {
	pos, ok := s.index[id]
	if !ok {
		return Note{}, false
	}
	return s.notes[pos].Clone(), true
}

// List returns a snapshot of all notes in collection order.
func (s *Store) List() []Note {
	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Len returns the number of notes in the store.
func (s *Store) Len() int {
	return len(s.notes)
}

// maxIDAttempts bounds how often a custom generator is asked for a usable id
// before the store falls back to uuids.
const maxIDAttempts = 8

func (s *Store) uniqueID() string {
	for range maxIDAttempts {
		id := s.opts.NewID()
		if s.usableID(id) {
			return id
		}
		s.logger.Warn("id generator returned unusable id, retrying", "id", id)
	}
	s.logger.Warn("id generator exhausted, falling back to uuid", "attempts", maxIDAttempts)
	for {
		if id := uuid.NewString(); s.usableID(id) {
			return id
		}
	}
}

func (s *Store) usableID(id string) bool {
	_, taken := s.index[id]
	return id != "" && !taken
}

func (s *Store) reindex() {
	clear(s.index)
	for i, n := range s.notes {
		s.index[n.ID] = i
	}
}
