package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/aretw0/smartnotes/pkg/core"
)

type keyMap struct {
	Up, Down, Select, New, Delete, Edit, Search, ClearFilters, Copy, Quit key.Binding

	Save, Discard, NextField key.Binding
	Format                   map[core.FormatCommand]key.Binding

	Confirm, Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		New:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearFilters: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Discard:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Format: map[core.FormatCommand]key.Binding{
			core.CommandBold:                key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
			core.CommandItalic:              key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
			core.CommandUnderline:           key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underline")),
			core.CommandInsertUnorderedList: key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list")),
			core.CommandInsertOrderedList:   key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "numbered")),
		},

		Confirm: key.NewBinding(key.WithKeys("enter")),
		Cancel:  key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.New, k.Edit, k.Delete, k.Search, k.ClearFilters, k.Copy, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	help := []key.Binding{k.Save, k.Discard, k.NextField}
	for _, cmd := range core.FormatCommands {
		help = append(help, k.Format[cmd])
	}
	return help
}
