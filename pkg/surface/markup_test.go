package surface_test

import (
	"testing"

	"github.com/aretw0/smartnotes/pkg/core"
	"github.com/aretw0/smartnotes/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkup_TypeEscapesText(t *testing.T) {
	m := surface.NewMarkup("<p>intro</p>")

	m.Type("a < b & c")

	assert.Equal(t, "<p>intro</p>a &lt; b &amp; c", m.CurrentContent())
}

func TestMarkup_InlineToggles(t *testing.T) {
	m := surface.NewMarkup("")

	m.Type("plain ")
	require.NoError(t, m.Apply(core.CommandBold))
	m.Type("bold ")
	require.NoError(t, m.Apply(core.CommandItalic))
	m.Type("both")
	require.NoError(t, m.Apply(core.CommandBold))
	m.Type(" italic")
	require.NoError(t, m.Apply(core.CommandItalic))
	m.Type(" done")

	assert.Equal(t,
		"plain <strong>bold <em>both</em></strong><em> italic</em> done",
		m.CurrentContent())
	assert.Empty(t, m.Active())
}

func TestMarkup_CurrentContentClosesOpenTagsWithoutMutating(t *testing.T) {
	m := surface.NewMarkup("")
	require.NoError(t, m.Apply(core.CommandUnderline))
	m.Type("open")

	assert.Equal(t, "<u>open</u>", m.CurrentContent())

	m.Type(" still")
	assert.Equal(t, "<u>open still</u>", m.CurrentContent())
	assert.Equal(t, []string{"u"}, m.Active())
}

func TestMarkup_Lists(t *testing.T) {
	m := surface.NewMarkup("")

	require.NoError(t, m.Apply(core.CommandInsertUnorderedList))
	m.Type("milk")
	m.NewLine()
	require.NoError(t, m.Apply(core.CommandBold))
	m.Type("eggs")
	m.NewLine()
	m.Type("bread")
	require.NoError(t, m.Apply(core.CommandInsertOrderedList))
	m.Type("first")

	assert.Equal(t,
		"<ul><li>milk</li><li><strong>eggs</strong></li><li><strong>bread</strong></li></ul>"+
			"<ol><li><strong>first</strong></li></ol>",
		m.CurrentContent())

	require.NoError(t, m.Apply(core.CommandInsertOrderedList))
	m.NewLine()
	assert.Equal(t,
		"<ul><li>milk</li><li><strong>eggs</strong></li><li><strong>bread</strong></li></ul>"+
			"<ol><li><strong>first</strong></li></ol><br>",
		m.CurrentContent())
}

func TestMarkup_UnknownCommand(t *testing.T) {
	m := surface.NewMarkup("x")

	err := m.Apply(core.FormatCommand("strikeThrough"))

	assert.ErrorIs(t, err, core.ErrUnknownCommand)
	assert.Equal(t, "x", m.CurrentContent())
}

func TestMarkup_ResetDropsFormattingState(t *testing.T) {
	m := surface.NewMarkup("")
	require.NoError(t, m.Apply(core.CommandInsertUnorderedList))
	require.NoError(t, m.Apply(core.CommandBold))
	m.Type("item")

	m.Reset("<p>fresh</p>")
	m.Type("!")

	assert.Equal(t, "<p>fresh</p>!", m.CurrentContent())
}

func TestMarkup_WithController(t *testing.T) {
	m := surface.NewMarkup("")
	c := core.NewController(core.NewStore(core.StoreOptions{}), m, nil)

	c.CreateNote()
	m.Type(" more")
	require.NoError(t, c.Format(core.CommandBold))
	m.Type("bold")

	saved, err := c.Save()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultContent+" more<strong>bold</strong>", saved.Content)
}
