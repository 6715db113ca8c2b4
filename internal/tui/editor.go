package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/smartnotes/pkg/core"
)

// Editor is a core.RichTextSurface backed by a bubbles textarea.
//
// Formatting commands insert markup at the cursor. Tags opened by a command stay
// open until the same command runs again; CurrentContent closes whatever is
// still open.
type Editor struct {
	ta   textarea.Model
	open []string
}

var formatTags = map[core.FormatCommand]struct {
	open, close string
}{
	core.CommandBold:                {"<strong>", "</strong>"},
	core.CommandItalic:              {"<em>", "</em>"},
	core.CommandUnderline:           {"<u>", "</u>"},
	core.CommandInsertUnorderedList: {"<ul>\n<li>", "</li>\n</ul>"},
	core.CommandInsertOrderedList:   {"<ol>\n<li>", "</li>\n</ol>"},
}

// NewEditor returns an empty, blurred Editor.
func NewEditor() *Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "Start writing..."
	ta.FocusedStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		EndOfBuffer: mutedStyle,
		Placeholder: mutedStyle,
		Prompt:      lipgloss.NewStyle(),
		Text:        lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// alt+b, alt+u and alt+l are formatting shortcuts
	ta.KeyMap.WordBackward = key.NewBinding(key.WithKeys("alt+left"))
	ta.KeyMap.UppercaseWordForward = key.NewBinding(key.WithDisabled())
	ta.KeyMap.LowercaseWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()
	return &Editor{ta: ta}
}

// Apply implements core.RichTextSurface.
func (e *Editor) Apply(cmd core.FormatCommand) error {
	tags, ok := formatTags[cmd]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrUnknownCommand, cmd)
	}
	for i, c := range e.open {
		if c == tags.close {
			e.ta.InsertString(tags.close)
			e.open = append(e.open[:i:i], e.open[i+1:]...)
			return nil
		}
	}
	e.ta.InsertString(tags.open)
	e.open = append(e.open, tags.close)
	return nil
}

// CurrentContent implements core.RichTextSurface.
func (e *Editor) CurrentContent() string {
	var b strings.Builder
	b.WriteString(e.ta.Value())
	for i := len(e.open) - 1; i >= 0; i-- {
		b.WriteString(e.open[i])
	}
	return b.String()
}

// Reset implements core.RichTextSurface.
func (e *Editor) Reset(content string) {
	e.ta.SetValue(content)
	e.open = nil
}

// Focus gives the textarea keyboard focus.
func (e *Editor) Focus() tea.Cmd { return e.ta.Focus() }

// Blur removes keyboard focus.
func (e *Editor) Blur() { e.ta.Blur() }

// SetSize resizes the textarea.
func (e *Editor) SetSize(width, height int) {
	e.ta.SetWidth(width)
	e.ta.SetHeight(height)
}

// Update forwards a message to the textarea.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return cmd
}

// View renders the textarea.
func (e *Editor) View() string { return e.ta.View() }

var _ core.RichTextSurface = (*Editor)(nil)
