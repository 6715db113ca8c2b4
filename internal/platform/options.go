package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/smartnotes/pkg/core"
)

// options holds the internal configuration for a smartnotes Controller.
type options struct {
	logger  *slog.Logger
	surface core.RichTextSurface
	config  Config
	now     func() time.Time
	newID   func() string
	seed    bool
}

// Option defines a functional option for configuring smartnotes.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: DefaultConfig(),
		seed:   true,
	}
}

// WithLogger sets the logger shared by the store, the session and the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSurface attaches the rich-text surface that commits read content from.
// Without a surface, content must be set explicitly before saving.
func WithSurface(s core.RichTextSurface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithConfig replaces the default configuration (note defaults and seed notes).
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides the note id generator (useful for testing).
// The store still rejects empty and duplicate ids, and falls back to uuids when
// the generator keeps producing them.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithSeed controls whether the configured seed notes are inserted.
// By default, seeding is enabled.
func WithSeed(enabled bool) Option {
	return func(o *options) {
		o.seed = enabled
	}
}
