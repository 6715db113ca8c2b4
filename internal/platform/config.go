package platform

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/smartnotes/pkg/core"
)

// ConfigFileName is the file looked up by FindConfig.
const ConfigFileName = ".smartnotes.yaml"

// Config is the YAML configuration of the application.
//
//	defaults:
//	  title: Untitled Note
//	  content: <p>Start writing...</p>
//	seed:
//	  - title: Welcome to Smart Notes
//	    content: <p>Hello</p>
//	    tags: [welcome, tutorial]
//	log:
//	  level: info
type Config struct {
	Defaults Defaults     `yaml:"defaults"`
	Seed     []core.Draft `yaml:"seed"`
	Log      LogConfig    `yaml:"log"`
}

// Defaults holds the values given to newly created notes.
type Defaults struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration, seeded with the welcome note.
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Title:   core.DefaultTitle,
			Content: core.DefaultContent,
		},
		Seed: []core.Draft{
			{
				Title:   "Welcome to Smart Notes",
				Content: "<p>This is a <strong>rich text</strong> note with <em>formatting</em> support!</p>",
				Tags:    []string{"welcome", "tutorial"},
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Keys missing from the file keep their default value; a present seed list
// (even an empty one) replaces the default seed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LogLevel parses the configured level. An empty level means Info.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
