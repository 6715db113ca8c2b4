// Package tui is the interactive two-pane terminal interface.
//
// The left pane lists the visible notes; the right pane shows the selected note
// or, while editing, the draft. Every key press becomes one Controller intent and
// the view is re-derived from the Controller afterwards, so the model keeps no
// copy of note state beyond the list cursor and the draft input widgets.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/aretw0/smartnotes/pkg/core"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
)

type field int

const (
	fieldContent field = iota
	fieldTitle
	fieldTags
	fieldCount
)

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the function used to yank note content.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// Model is the bubbletea model driving a Controller.
type Model struct {
	ctrl   *core.Controller
	editor *Editor
	keys   keyMap

	mode   mode
	field  field
	cursor int

	title  textinput.Model
	tags   textinput.Model
	search textinput.Model

	width, height int
	status        string
	failed        bool
	lastEvent     string
	copy          func(string) error
}

// New builds a Model. editor must be the surface attached to ctrl.
func New(ctrl *core.Controller, editor *Editor, opts ...Option) *Model {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = core.DefaultTitle

	tags := textinput.New()
	tags.Prompt = "+ "
	tags.Placeholder = "tag (prefix - to remove)"

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"

	m := &Model{
		ctrl:   ctrl,
		editor: editor,
		keys:   defaultKeyMap(),
		title:  title,
		tags:   tags,
		search: search,
		width:  80,
		height: 24,
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	ctrl.Subscribe(func(e core.Event) { m.lastEvent = e.String() })
	if ctrl.EditSessionState().State == core.Editing {
		m.enterEdit()
	}
	return m
}

// Run starts the program on the alternate screen until the user quits or ctx ends.
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		m.status, m.failed = "", false
		if m.editing() {
			return m, m.updateEdit(msg)
		}
		if m.mode == modeSearch {
			return m, m.updateSearch(msg)
		}
		return m, m.updateBrowse(msg)
	}
	if m.editing() {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

func (m *Model) editing() bool {
	return m.ctrl.EditSessionState().State == core.Editing
}

func (m *Model) setStatus(text string, err error) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = text, false
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	visible := m.ctrl.VisibleNotes()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Select):
		if len(visible) > 0 {
			m.setStatus("", m.ctrl.Select(visible[m.cursor].ID))
		}
	case key.Matches(msg, m.keys.New):
		m.ctrl.CreateNote()
		m.cursor = 0
		return m.enterEdit()
	case key.Matches(msg, m.keys.Edit):
		if _, ok := m.ctrl.SelectedNote(); !ok && len(visible) > 0 {
			_ = m.ctrl.Select(visible[m.cursor].ID)
		}
		if err := m.ctrl.StartEdit(); err != nil {
			m.setStatus("", err)
			return nil
		}
		return m.enterEdit()
	case key.Matches(msg, m.keys.Delete):
		if len(visible) > 0 {
			id := visible[m.cursor].ID
			m.ctrl.DeleteNote(id)
			m.setStatus("deleted "+id, nil)
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.ctrl.SearchQuery())
		m.search.CursorEnd()
		return m.search.Focus()
	case key.Matches(msg, m.keys.ClearFilters):
		m.ctrl.ClearFilters()
	case key.Matches(msg, m.keys.Copy):
		if n, ok := m.ctrl.SelectedNote(); ok {
			if err := m.copy(n.Content); err != nil {
				m.setStatus("", fmt.Errorf("copy failed: %w", err))
			} else {
				m.setStatus("yanked "+n.Title, nil)
			}
		}
	default:
		// 1-9 toggle the tag filters shown in the filter bar
		if i, err := strconv.Atoi(msg.String()); err == nil && i >= 1 {
			if tags := m.ctrl.AllTags(); i <= len(tags) {
				m.ctrl.ToggleTagFilter(tags[i-1])
			}
		}
	}
	m.clampCursor()
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse
		m.search.Blur()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.SetSearchQuery("")
		m.clampCursor()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.SearchQuery() {
		m.ctrl.SetSearchQuery(m.search.Value())
		m.clampCursor()
	}
	return cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Save):
		n, err := m.ctrl.Save()
		if err != nil {
			m.setStatus("", err)
			if !m.editing() {
				m.leaveEdit()
			}
			return nil
		}
		m.setStatus("saved "+n.Title, nil)
		m.leaveEdit()
		return nil
	case key.Matches(msg, m.keys.Discard):
		m.ctrl.Discard()
		m.setStatus("changes discarded", nil)
		m.leaveEdit()
		return nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.field + 1) % fieldCount)
	}
	for _, cmd := range core.FormatCommands {
		if key.Matches(msg, m.keys.Format[cmd]) {
			m.setStatus("", m.ctrl.Format(cmd))
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		m.ctrl.SetDraftTitle(m.title.Value())
	case fieldTags:
		if key.Matches(msg, m.keys.Confirm) {
			m.applyTagInput()
			return nil
		}
		m.tags, cmd = m.tags.Update(msg)
	default:
		cmd = m.editor.Update(msg)
	}
	return cmd
}

func (m *Model) applyTagInput() {
	value := strings.TrimSpace(m.tags.Value())
	m.tags.SetValue("")
	if rest, ok := strings.CutPrefix(value, "-"); ok {
		m.ctrl.RemoveDraftTag(strings.TrimSpace(rest))
		return
	}
	m.ctrl.AddDraftTag(value)
}

func (m *Model) enterEdit() tea.Cmd {
	snap := m.ctrl.EditSessionState()
	m.title.SetValue(snap.Draft.Title)
	m.title.CursorEnd()
	m.tags.SetValue("")
	m.resize()
	return m.focusField(fieldContent)
}

func (m *Model) leaveEdit() {
	m.title.Blur()
	m.tags.Blur()
	m.editor.Blur()
	m.field = fieldContent
	m.clampCursor()
}

func (m *Model) focusField(f field) tea.Cmd {
	m.field = f
	m.title.Blur()
	m.tags.Blur()
	m.editor.Blur()
	switch f {
	case fieldTitle:
		return m.title.Focus()
	case fieldTags:
		return m.tags.Focus()
	default:
		return m.editor.Focus()
	}
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.VisibleNotes())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) listWidth() int {
	return max(20, m.width/3)
}

func (m *Model) resize() {
	detail := max(20, m.width-m.listWidth()-6)
	m.title.Width = detail
	m.tags.Width = detail
	m.search.Width = m.listWidth()
	m.editor.SetSize(detail, max(3, m.height-12))
}

// View implements tea.Model.
func (m *Model) View() string {
	list := m.viewList()
	var detail string
	if m.editing() {
		detail = m.viewDraft()
	} else {
		detail = m.viewNote()
	}
	listPane, detailPane := focusedPane, paneStyle
	if m.editing() {
		listPane, detailPane = paneStyle, focusedPane
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listPane.Width(m.listWidth()).Render(list),
		detailPane.Width(max(20, m.width-m.listWidth()-4)).Render(detail),
	)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.viewFilters(), m.viewFooter())
}

func (m *Model) viewList() string {
	visible := m.ctrl.VisibleNotes()
	if len(visible) == 0 {
		return mutedStyle.Render("no notes")
	}
	selected, _ := m.ctrl.SelectedNote()
	width := m.listWidth() - 4
	var b strings.Builder
	for i, n := range visible {
		line := runewidth.Truncate(n.Title, width, "…")
		style := lipgloss.NewStyle()
		if n.ID == selected.ID {
			style = selectedStyle
		}
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + style.Render(line))
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) viewNote() string {
	n, ok := m.ctrl.SelectedNote()
	if !ok {
		return mutedStyle.Render("select a note with enter, or create one with n")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(n.Title) + "\n")
	b.WriteString(renderTags(n.Tags, nil, false) + "\n")
	b.WriteString(mutedStyle.Render("updated "+n.UpdatedAt.Format("2006-01-02 15:04")) + "\n\n")
	b.WriteString(n.Content)
	return b.String()
}

func (m *Model) viewDraft() string {
	snap := m.ctrl.EditSessionState()
	label := func(f field, text string) string {
		if m.field == f {
			return cursorStyle.Render(text)
		}
		return mutedStyle.Render(text)
	}
	var b strings.Builder
	b.WriteString(label(fieldTitle, "title") + "\n" + m.title.View() + "\n")
	b.WriteString(label(fieldTags, "tags") + " " + renderTags(snap.Draft.Tags, nil, false) + "\n" + m.tags.View() + "\n")
	b.WriteString(label(fieldContent, "content") + "\n" + m.editor.View())
	return b.String()
}

func (m *Model) viewFilters() string {
	var parts []string
	if m.mode == modeSearch {
		parts = append(parts, m.search.View())
	} else if q := m.ctrl.SearchQuery(); q != "" {
		parts = append(parts, "/"+q)
	}
	parts = append(parts, renderTags(m.ctrl.AllTags(), m.ctrl.ActiveTagFilters(), true))
	return strings.Join(parts, "  ")
}

func (m *Model) viewFooter() string {
	if m.status != "" {
		if m.failed {
			return errorStyle.Render(m.status)
		}
		return mutedStyle.Render(m.status)
	}
	bindings := m.keys.browseHelp()
	if m.editing() {
		bindings = m.keys.editHelp()
	}
	help := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	text := strings.Join(help, " · ")
	if m.lastEvent != "" {
		text = "[" + m.lastEvent + "]  " + text
	}
	return mutedStyle.Render(runewidth.Truncate(text, m.width, "…"))
}

// renderTags highlights active tags. Numbered tags can be toggled with 1-9.
func renderTags(tags, active []string, numbered bool) string {
	if len(tags) == 0 {
		return mutedStyle.Render("no tags")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		label := "#" + t
		if numbered {
			label = fmt.Sprintf("%d:%s", i+1, t)
		}
		style := tagStyle
		for _, a := range active {
			if a == t {
				style = activeTag
				break
			}
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, " ")
}

var _ tea.Model = (*Model)(nil)
