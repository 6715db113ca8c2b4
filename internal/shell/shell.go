// Package shell interprets line-oriented intents against a Controller.
//
// Each input line is one intent ("new", "title Groceries", "save", ...). Lines are
// executed one at a time, in order, so the Controller never sees two mutations
// interleaved.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/smartnotes/pkg/core"
	"github.com/aretw0/smartnotes/pkg/surface"
)

// ErrQuit is returned by Exec for the quit intent.
var ErrQuit = errors.New("quit")

// ErrUnknownIntent is returned by Exec for lines it cannot interpret.
var ErrUnknownIntent = errors.New("unknown intent")

// Shell executes intents and writes their results to Out.
type Shell struct {
	ctrl    *core.Controller
	surface *surface.Markup
	out     io.Writer
	logger  *slog.Logger

	// Prompt is written before every line read by Run. Empty disables it.
	Prompt string
	// Strict makes Run stop at the first failing intent.
	Strict bool
}

// New creates a Shell. surf must be the surface attached to ctrl.
func New(ctrl *core.Controller, surf *surface.Markup, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{ctrl: ctrl, surface: surf, out: out, logger: logger}
}

// Run reads intents from r until EOF, quit or ctx is done.
//
// Lines are scanned on a separate goroutine so a blocked read does not keep Run
// from returning ctx.Err(); intents still execute on the calling goroutine.
func (s *Shell) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			err := s.Exec(line)
			switch {
			case errors.Is(err, ErrQuit):
				return nil
			case err != nil:
				fmt.Fprintf(s.out, "error: %v\n", err)
				if s.Strict {
					return err
				}
			}
			s.prompt()
		}
	}
}

func (s *Shell) prompt() {
	if s.Prompt != "" {
		fmt.Fprint(s.out, s.Prompt)
	}
}

// Exec runs a single intent line. Blank lines and lines starting with '#' are ignored.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	s.logger.Debug("intent", "verb", verb, "arg", arg)

	switch verb {
	case "help":
		s.help()
	case "quit", "exit":
		return ErrQuit
	case "list", "ls":
		s.list()
	case "new":
		n := s.ctrl.CreateNote()
		fmt.Fprintf(s.out, "created %s\n", n.ID)
	case "select":
		id, err := s.resolve(arg)
		if err != nil {
			return err
		}
		return s.ctrl.Select(id)
	case "delete", "rm":
		id, err := s.resolve(arg)
		if err != nil {
			return err
		}
		if s.ctrl.DeleteNote(id) {
			fmt.Fprintf(s.out, "deleted %s\n", id)
		} else {
			fmt.Fprintf(s.out, "no note %s\n", id)
		}
	case "edit":
		return s.ctrl.StartEdit()
	case "title":
		s.ctrl.SetDraftTitle(arg)
	case "type":
		if s.ctrl.EditSessionState().State != core.Editing {
			return core.ErrNoSession
		}
		s.surface.Type(arg)
	case "newline", "nl":
		if s.ctrl.EditSessionState().State != core.Editing {
			return core.ErrNoSession
		}
		s.surface.NewLine()
	case "content":
		if s.ctrl.EditSessionState().State != core.Editing {
			return core.ErrNoSession
		}
		s.ctrl.SetDraftContent(arg)
	case "format":
		cmd, err := core.ParseFormatCommand(arg)
		if err != nil {
			return err
		}
		return s.ctrl.Format(cmd)
	case "tag":
		s.ctrl.AddDraftTag(arg)
	case "untag":
		s.ctrl.RemoveDraftTag(arg)
	case "save":
		n, err := s.ctrl.Save()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %s %q\n", n.ID, n.Title)
	case "discard":
		s.ctrl.Discard()
	case "search":
		s.ctrl.SetSearchQuery(arg)
	case "filter":
		if arg == "" {
			return fmt.Errorf("filter: missing tag")
		}
		s.ctrl.ToggleTagFilter(arg)
	case "clear":
		s.ctrl.ClearFilters()
	case "show":
		s.show()
	case "tags":
		return s.tags(arg)
	case "state":
		return s.state()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, verb)
	}
	return nil
}

// resolve maps "", a 1-based index into the visible list, or an id to a note id.
func (s *Shell) resolve(ref string) (string, error) {
	if ref == "" {
		n, ok := s.ctrl.SelectedNote()
		if !ok {
			return "", core.ErrNoSelection
		}
		return n.ID, nil
	}
	visible := s.ctrl.VisibleNotes()
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 1 || i > len(visible) {
			return "", fmt.Errorf("index %d out of range (1-%d)", i, len(visible))
		}
		return visible[i-1].ID, nil
	}
	return ref, nil
}

func (s *Shell) list() {
	selected, _ := s.ctrl.SelectedNote()
	visible := s.ctrl.VisibleNotes()
	if len(visible) == 0 {
		fmt.Fprintln(s.out, "(no notes)")
		return
	}
	for i, n := range visible {
		marker := " "
		if n.ID == selected.ID {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %d. %s  %s", marker, i+1, n.ID, n.Title)
		if len(n.Tags) > 0 {
			fmt.Fprintf(s.out, "  [%s]", strings.Join(n.Tags, ", "))
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) show() {
	state := s.ctrl.EditSessionState()
	if state.State == core.Editing {
		fmt.Fprintf(s.out, "editing %s\n", state.NoteID)
		fmt.Fprintf(s.out, "title:   %s\n", state.Draft.Title)
		fmt.Fprintf(s.out, "tags:    %s\n", strings.Join(state.Draft.Tags, ", "))
		fmt.Fprintf(s.out, "content: %s\n", s.surface.CurrentContent())
		return
	}
	n, ok := s.ctrl.SelectedNote()
	if !ok {
		fmt.Fprintln(s.out, "(nothing selected)")
		return
	}
	fmt.Fprintf(s.out, "%s\n", n.ID)
	fmt.Fprintf(s.out, "title:   %s\n", n.Title)
	fmt.Fprintf(s.out, "tags:    %s\n", strings.Join(n.Tags, ", "))
	fmt.Fprintf(s.out, "updated: %s\n", n.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(s.out, "content: %s\n", n.Content)
}

func (s *Shell) tags(pattern string) error {
	var tags []string
	if pattern == "" {
		tags = s.ctrl.AllTags()
	} else {
		var err error
		if tags, err = s.ctrl.TagsMatching(pattern); err != nil {
			return err
		}
	}
	active := s.ctrl.ActiveTagFilters()
	for _, t := range tags {
		marker := " "
		for _, a := range active {
			if a == t {
				marker = "*"
				break
			}
		}
		fmt.Fprintf(s.out, "%s %s\n", marker, t)
	}
	return nil
}

func (s *Shell) state() error {
	encoder := json.NewEncoder(s.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s.ctrl.State())
}

func (s *Shell) help() {
	fmt.Fprint(s.out, `intents:
  list                 list visible notes (* marks the selection)
  new                  create a note and start editing it
  select <n|id>        select a note, dropping unsaved edits
  delete [n|id]        delete a note (default: the selection)
  edit                 start editing the selected note
  title <text>         set the draft title
  type <text>          type text into the editor
  newline              end the current line or list item
  content <markup>     replace the editor content
  format <command>     bold, italic, underline, insertUnorderedList, insertOrderedList
  tag <tag>            add a draft tag
  untag <tag>          remove a draft tag
  save                 commit the draft
  discard              drop the draft
  search [text]        set the search query (empty clears it)
  filter <tag>         toggle a tag filter
  clear                clear the query and tag filters
  show                 show the selected note or the draft
  tags [pattern]       list tags, optionally matching a glob
  state                dump controller state as JSON
  quit                 leave
`)
}
