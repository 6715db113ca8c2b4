package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aretw0/smartnotes"
	"github.com/aretw0/smartnotes/internal/shell"
	adapter "github.com/aretw0/smartnotes/pkg/adapters/lifecycle"
	"github.com/aretw0/smartnotes/pkg/surface"
)

var (
	shellScript string
	shellEvents bool
	shellStrict bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive the note collection with line-oriented intents",
	Long: `Reads one intent per line from stdin (or --script) and applies it to an
in-memory note collection. Type "help" for the list of intents.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var in io.Reader = os.Stdin
		interactive := shellScript == "" && isatty.IsTerminal(os.Stdin.Fd())
		if shellScript != "" {
			f, err := os.Open(shellScript)
			if err != nil {
				fatal("Error opening script", err)
			}
			defer f.Close()
			in = f
		}

		markup := surface.NewMarkup("")
		c := newController(smartnotes.WithSurface(markup))

		if shellEvents {
			src := adapter.NewSource(c, adapter.DefaultBuffer, nil)
			if err := src.Start(ctx); err != nil {
				fatal("Error starting event source", err)
			}
			done := make(chan struct{})
			go func() {
				defer close(done)
				for e := range src.Events() {
					fmt.Fprintf(os.Stderr, "event: %s\n", e)
				}
			}()
			defer func() {
				src.Stop()
				<-done
			}()
		}

		sh := shell.New(c, markup, os.Stdout, nil)
		sh.Strict = shellStrict
		if interactive {
			sh.Prompt = "smartnotes> "
			fmt.Println(`Smart Notes shell. Type "help" for intents, "quit" to leave.`)
		}
		if err := sh.Run(ctx, in); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, "interrupted")
				return
			}
			fatal("Shell stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVarP(&shellScript, "script", "s", "", "Read intents from a file instead of stdin")
	shellCmd.Flags().BoolVar(&shellEvents, "events", false, "Print controller events to stderr")
	shellCmd.Flags().BoolVar(&shellStrict, "strict", false, "Stop at the first failing intent")
}
