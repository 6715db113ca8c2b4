package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/smartnotes"
	"github.com/aretw0/smartnotes/internal/tui"
)

var uiLogFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive two-pane note editor",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// The terminal belongs to the UI; logs only go to a file when asked.
		logger := slog.New(slog.DiscardHandler)
		if uiLogFile != "" {
			f, err := os.OpenFile(uiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fatal("Error opening log file", err)
			}
			defer f.Close()
			logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		editor := tui.NewEditor()
		c := newController(smartnotes.WithSurface(editor), smartnotes.WithLogger(logger))
		if err := tui.Run(ctx, tui.New(c, editor)); err != nil {
			fatal("UI stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiLogFile, "log-file", "", "Write debug logs to this file")
}
