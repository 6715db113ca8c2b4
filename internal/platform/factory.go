package platform

import (
	"errors"
	"os"

	"github.com/aretw0/smartnotes/pkg/core"
)

// New wires a Store, an EditSession and a Controller from the given options,
// and inserts the configured seed notes.
//
//	ctrl := platform.New(platform.WithSurface(s), platform.WithLogger(logger))
func New(opts ...Option) *core.Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := core.NewStore(core.StoreOptions{
		Title:   o.config.Defaults.Title,
		Content: o.config.Defaults.Content,
		Now:     o.now,
		NewID:   o.newID,
		Logger:  o.logger,
	})

	if o.seed {
		// Insert in reverse so the first seed entry ends up first in the list.
		for i := len(o.config.Seed) - 1; i >= 0; i-- {
			store.CreateFrom(o.config.Seed[i])
		}
		if o.logger != nil {
			o.logger.Debug("seeded notes", "count", len(o.config.Seed))
		}
	}

	return core.NewController(store, o.surface, o.logger)
}

// Open loads the configuration at path and wires a Controller with it.
// An empty path searches upwards from the working directory with FindConfig and
// falls back to DefaultConfig when nothing is found.
func Open(path string, opts ...Option) (*core.Controller, Config, error) {
	cfg, err := ResolveConfig(path, opts...)
	if err != nil {
		return nil, cfg, err
	}
	all := append([]Option{WithConfig(cfg)}, opts...)
	return New(all...), cfg, nil
}

// ResolveConfig returns the configuration for path, applying the discovery rules of Open.
// Only WithLogger is consulted among opts; it reports which file was found.
func ResolveConfig(path string, opts ...Option) (Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if path != "" {
		return LoadConfig(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return DefaultConfig(), err
	}
	found, err := FindConfig(wd)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}
	if o.logger != nil {
		o.logger.Debug("using config", "path", found)
	}
	return LoadConfig(found)
}
