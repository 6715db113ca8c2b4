package core_test

import (
	"testing"

	"github.com/aretw0/smartnotes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func welcomeNotes() []core.Note {
	return []core.Note{
		{
			ID:      "1",
			Title:   "Welcome to Smart Notes",
			Content: "<p>This is a <strong>rich text</strong> note with <em>formatting</em> support!</p>",
			Tags:    []string{"welcome", "tutorial"},
		},
	}
}

func sampleNotes() []core.Note {
	return []core.Note{
		{ID: "a", Title: "Groceries", Content: "<ul><li>milk</li></ul>", Tags: []string{"home", "todo"}},
		{ID: "b", Title: "Sprint plan", Content: "<p>ship the <strong>filter</strong></p>", Tags: []string{"work/acme", "todo"}},
		{ID: "c", Title: "Reading list", Content: "<p>Go in practice</p>", Tags: []string{"home"}},
		{ID: "d", Title: "Retro", Content: "<p>what went well</p>", Tags: []string{"work/acme", "work/retro"}},
	}
}

func ids(notes []core.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestFilter_WelcomeScenario(t *testing.T) {
	notes := welcomeNotes()

	got := core.Filter(notes, "welcome", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Welcome to Smart Notes", got[0].Title)

	assert.Empty(t, core.Filter(notes, "", []string{"tutorial", "missing"}))
}

func TestFilter_Query(t *testing.T) {
	notes := sampleNotes()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"a", "b", "c", "d"}},
		{"title case-insensitive", "SPRINT", []string{"b"}},
		{"content text", "milk", []string{"a"}},
		{"markup is searchable", "<strong>", []string{"b"}},
		{"no match", "zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(core.Filter(notes, tt.query, nil)))
		})
	}
}

func TestFilter_TagsUseAndSemantics(t *testing.T) {
	notes := sampleNotes()

	assert.Equal(t, []string{"a", "c"}, ids(core.Filter(notes, "", []string{"home"})))
	assert.Equal(t, []string{"a"}, ids(core.Filter(notes, "", []string{"home", "todo"})))
	assert.Equal(t, []string{"b"}, ids(core.Filter(notes, "ship", []string{"work/acme"})))
	assert.Empty(t, core.Filter(notes, "", []string{"home", "work/acme"}))
}

func TestFilter_IsOrderPreservingSubsequence(t *testing.T) {
	notes := sampleNotes()
	queries := []string{"", "e", "o", "<p>", "retro"}
	tagSets := [][]string{nil, {"home"}, {"todo"}, {"work/acme"}, {"missing"}}

	for _, q := range queries {
		for _, tags := range tagSets {
			got := core.Filter(notes, q, tags)
			j := 0
			for _, n := range got {
				for j < len(notes) && notes[j].ID != n.ID {
					j++
				}
				require.Less(t, j, len(notes), "query %q tags %v: %s out of order", q, tags, n.ID)
				j++
			}
		}
	}
}

func TestAllTags(t *testing.T) {
	assert.Equal(t,
		[]string{"home", "todo", "work/acme", "work/retro"},
		core.AllTags(sampleNotes()))
	assert.Empty(t, core.AllTags(nil))
}

func TestTagsMatching(t *testing.T) {
	notes := sampleNotes()

	got, err := core.TagsMatching(notes, "work/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"work/acme", "work/retro"}, got)

	got, err = core.TagsMatching(notes, "**")
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = core.TagsMatching(notes, "h?me")
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, got)

	_, err = core.TagsMatching(notes, "work/[")
	assert.Error(t, err)
}
