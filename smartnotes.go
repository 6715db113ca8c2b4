package smartnotes

import (
	"log/slog"
	"time"

	"github.com/aretw0/smartnotes/internal/platform"
	"github.com/aretw0/smartnotes/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Configuration ---

// Config is the content of a .smartnotes.yaml file.
type Config = platform.Config

// ConfigFileName is the file searched for by Open when no path is given.
const ConfigFileName = platform.ConfigFileName

// Option defines a functional option for configuring Smart Notes.
type Option = platform.Option

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSurface attaches the rich-text surface that saves read content from.
func WithSurface(s core.RichTextSurface) Option {
	return platform.WithSurface(s)
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// WithSeed enables or disables inserting the configured seed notes.
func WithSeed(enabled bool) Option {
	return platform.WithSeed(enabled)
}

// --- Constructors ---

// New creates a Controller over a fresh in-memory collection.
func New(opts ...Option) *core.Controller {
	return platform.New(opts...)
}

// Open resolves the configuration at path (or the nearest .smartnotes.yaml when
// path is empty) and creates a Controller with it.
func Open(path string, opts ...Option) (*core.Controller, Config, error) {
	return platform.Open(path, opts...)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// LoadConfig reads a configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// ResolveConfig applies the discovery rules of Open without building a Controller.
func ResolveConfig(path string, opts ...Option) (Config, error) {
	return platform.ResolveConfig(path, opts...)
}
