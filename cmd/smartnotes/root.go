package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/smartnotes"
	"github.com/aretw0/smartnotes/pkg/core"
)

var (
	verbose    bool
	configPath string
	noSeed     bool

	// config is resolved once per invocation by the root command.
	config smartnotes.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smartnotes",
	Short: "An in-memory note collection with search, tag filters and rich-text editing",
	Long: `Smart Notes keeps a collection of notes in memory for the length of a session.
Notes are created, edited through a rich-text surface, tagged, searched and
filtered. Nothing is persisted: every run starts from the configured seed notes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := smartnotes.ResolveConfig(configPath)
		if err != nil {
			return err
		}
		config = cfg

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newController builds a Controller from the resolved config.
func newController(opts ...smartnotes.Option) *core.Controller {
	base := []smartnotes.Option{
		smartnotes.WithConfig(config),
		smartnotes.WithLogger(slog.Default()),
		smartnotes.WithSeed(!noSeed),
	}
	return smartnotes.New(append(base, opts...)...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest "+smartnotes.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&noSeed, "empty", false, "Start without the seed notes")
}
