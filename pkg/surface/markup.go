// Package surface provides a RichTextSurface that produces HTML markup in memory.
//
// It models a caret that is always at the end of the document: formatting commands
// change what the next typed text looks like, much like a browser's execCommand on a
// collapsed selection. CurrentContent always returns well-formed markup, closing
// whatever is still open without changing the editing state.
package surface

import (
	"fmt"
	"html"
	"strings"

	"github.com/aretw0/smartnotes/pkg/core"
)

var inlineTags = map[core.FormatCommand]string{
	core.CommandBold:      "strong",
	core.CommandItalic:    "em",
	core.CommandUnderline: "u",
}

var listTags = map[core.FormatCommand]string{
	core.CommandInsertUnorderedList: "ul",
	core.CommandInsertOrderedList:   "ol",
}

// Markup is an in-memory HTML surface.
type Markup struct {
	buf strings.Builder

	active     []string // inline tags applying to the next text, outermost first
	inlineOpen bool     // active tags have been written and not yet closed
	list       string   // "ul", "ol" or "" when not in a list
	inItem     bool
}

// NewMarkup creates a surface holding content.
func NewMarkup(content string) *Markup {
	m := &Markup{}
	m.Reset(content)
	return m
}

// Reset implements core.RichTextSurface.
func (m *Markup) Reset(content string) {
	m.buf.Reset()
	m.buf.WriteString(content)
	m.active = nil
	m.inlineOpen = false
	m.list = ""
	m.inItem = false
}

// Apply implements core.RichTextSurface.
func (m *Markup) Apply(cmd core.FormatCommand) error {
	if tag, ok := inlineTags[cmd]; ok {
		m.toggleInline(tag)
		return nil
	}
	if tag, ok := listTags[cmd]; ok {
		m.toggleList(tag)
		return nil
	}
	return fmt.Errorf("%w: %q", core.ErrUnknownCommand, cmd)
}

// Type inserts plain text at the caret. The text is escaped.
func (m *Markup) Type(text string) {
	if text == "" {
		return
	}
	if m.list != "" && !m.inItem {
		m.buf.WriteString("<li>")
		m.inItem = true
	}
	if !m.inlineOpen {
		for _, tag := range m.active {
			m.buf.WriteString("<" + tag + ">")
		}
		m.inlineOpen = true
	}
	m.buf.WriteString(html.EscapeString(text))
}

// NewLine ends the current list item, or inserts a line break outside lists.
func (m *Markup) NewLine() {
	m.closeInline()
	if m.list == "" {
		m.buf.WriteString("<br>")
		return
	}
	if m.inItem {
		m.buf.WriteString("</li>")
		m.inItem = false
	}
}

// Active reports the inline formats applying to the next typed text.
func (m *Markup) Active() []string {
	out := make([]string, len(m.active))
	copy(out, m.active)
	return out
}

// CurrentContent implements core.RichTextSurface.
func (m *Markup) CurrentContent() string {
	var sb strings.Builder
	sb.WriteString(m.buf.String())
	if m.inlineOpen {
		sb.WriteString(closers(m.active))
	}
	if m.inItem {
		sb.WriteString("</li>")
	}
	if m.list != "" {
		sb.WriteString("</" + m.list + ">")
	}
	return sb.String()
}

func (m *Markup) toggleInline(tag string) {
	for i, t := range m.active {
		if t == tag {
			m.closeInline()
			m.active = append(m.active[:i:i], m.active[i+1:]...)
			return
		}
	}
	m.active = append(m.active, tag)
	if m.inlineOpen {
		m.buf.WriteString("<" + tag + ">")
	}
}

func (m *Markup) toggleList(tag string) {
	m.closeInline()
	if m.inItem {
		m.buf.WriteString("</li>")
		m.inItem = false
	}
	if m.list != "" {
		prev := m.list
		m.buf.WriteString("</" + prev + ">")
		m.list = ""
		if prev == tag {
			return
		}
	}
	m.buf.WriteString("<" + tag + ">")
	m.list = tag
}

func (m *Markup) closeInline() {
	if !m.inlineOpen {
		return
	}
	m.buf.WriteString(closers(m.active))
	m.inlineOpen = false
}

func closers(tags []string) string {
	var sb strings.Builder
	for i := len(tags) - 1; i >= 0; i-- {
		sb.WriteString("</" + tags[i] + ">")
	}
	return sb.String()
}

var _ core.RichTextSurface = (*Markup)(nil)
