package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an operation targets a note id that is not in the store.
	ErrNotFound = errors.New("note not found")

	// ErrNoContentCaptured is returned when a commit has no content snapshot to write.
	ErrNoContentCaptured = errors.New("no content captured from surface")

	// ErrNoSession is returned when a commit is attempted while no edit session is open.
	ErrNoSession = errors.New("no edit session open")

	// ErrNoSelection is returned when editing is requested with no note selected.
	ErrNoSelection = errors.New("no note selected")

	// ErrUnknownCommand is returned by surfaces for formatting commands they do not know.
	ErrUnknownCommand = errors.New("unknown formatting command")
)
