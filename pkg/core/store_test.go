package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/smartnotes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateDefaults(t *testing.T) {
	store := newTestStore()

	n := store.Create()

	assert.Equal(t, "n-1", n.ID)
	assert.Equal(t, core.DefaultTitle, n.Title)
	assert.Equal(t, core.DefaultContent, n.Content)
	assert.Empty(t, n.Tags)
	assert.True(t, n.CreatedAt.Equal(n.UpdatedAt), "createdAt and updatedAt must match on creation")
	assert.Equal(t, 1, store.Len())
}

func TestStore_CreateInsertsAtFront(t *testing.T) {
	store := newTestStore()

	first := store.Create()
	second := store.Create()
	third := store.CreateFrom(core.Draft{Title: "Third", Tags: []string{" a ", "a", "", "b"}})

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, []string{"a", "b"}, list[0].Tags)
}

func TestStore_CustomDefaults(t *testing.T) {
	store := core.NewStore(core.StoreOptions{Title: "Blank", Content: "<p></p>"})

	n := store.Create()

	assert.Equal(t, "Blank", n.Title)
	assert.Equal(t, "<p></p>", n.Content)
	assert.NotEmpty(t, n.ID)
}

func TestStore_IDsStayUniqueAcrossCreateDelete(t *testing.T) {
	// A generator that keeps repeating ids forces the store to retry.
	ids := []string{"a", "a", "b", "", "a", "c", "d", "e", "f", "g"}
	i := 0
	store := core.NewStore(core.StoreOptions{NewID: func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}})

	a := store.Create()
	b := store.Create()
	store.Delete(a.ID)
	store.Create()
	store.Create()
	store.Delete(b.ID)
	store.Create()

	seen := map[string]bool{}
	for _, n := range store.List() {
		require.NotEmpty(t, n.ID)
		require.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
	assert.Equal(t, 3, store.Len())
}

func TestStore_StuckIDGeneratorFallsBack(t *testing.T) {
	for name, gen := range map[string]func() string{
		"constant": func() string { return "same" },
		"empty":    func() string { return "" },
	} {
		t.Run(name, func(t *testing.T) {
			calls := 0
			store := core.NewStore(core.StoreOptions{NewID: func() string {
				calls++
				return gen()
			}})

			done := make(chan struct{})
			go func() {
				defer close(done)
				store.Create()
				store.Create()
				store.Create()
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Create never returned with a stuck id generator")
			}

			seen := map[string]bool{}
			for _, n := range store.List() {
				require.NotEmpty(t, n.ID)
				require.False(t, seen[n.ID], "duplicate id %s", n.ID)
				seen[n.ID] = true
			}
			assert.Equal(t, 3, store.Len())
			assert.LessOrEqual(t, calls, 3*8, "the generator is asked a bounded number of times")
		})
	}
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	store := newTestStore()
	store.Create()

	assert.False(t, store.Delete("missing"))
	assert.Equal(t, 1, store.Len())
}

func TestStore_CommitEdit(t *testing.T) {
	store := newTestStore()
	other := store.Create()
	target := store.Create()

	updated, err := store.CommitEdit(target.ID, core.Draft{
		Title:   "Edited",
		Content: "<p>body</p>",
		Tags:    []string{"x", "x", "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "<p>body</p>", updated.Content)
	assert.Equal(t, []string{"x", "y"}, updated.Tags)
	assert.True(t, updated.CreatedAt.Equal(target.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(target.UpdatedAt))

	untouched, ok := store.Get(other.ID)
	require.True(t, ok)
	assert.Equal(t, other, untouched)
}

func TestStore_CommitEditMissing(t *testing.T) {
	store := newTestStore()
	store.Create()
	before := store.List()

	_, err := store.CommitEdit("missing", core.Draft{Title: "x"})

	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, before, store.List())
}

func TestStore_UpdatedAtNeverBeforeCreatedAt(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	store := core.NewStore(core.StoreOptions{Now: func() time.Time { return now }})
	n := store.Create()

	for _, offset := range []time.Duration{time.Hour, -2 * time.Hour, 0, -time.Minute} {
		now = start.Add(offset)
		updated, err := store.CommitEdit(n.ID, core.Draft{Title: "t"})
		require.NoError(t, err)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt), "offset %s", offset)
		assert.True(t, updated.CreatedAt.Equal(start))
	}
}

func TestStore_ListIsACopy(t *testing.T) {
	store := newTestStore()
	n := store.CreateFrom(core.Draft{Title: "Original", Tags: []string{"keep"}})

	list := store.List()
	list[0].Title = "Mutated"
	list[0].Tags[0] = "mutated"

	got, ok := store.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, []string{"keep"}, got.Tags)

	got.Tags[0] = "again"
	again, _ := store.Get(n.ID)
	assert.Equal(t, []string{"keep"}, again.Tags)
}

func TestStore_State(t *testing.T) {
	store := newTestStore()
	store.Create()
	store.Create()

	state, ok := store.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Notes)
	assert.Equal(t, []string{"n-2", "n-1"}, state.IDs)
	assert.Equal(t, "store", store.ComponentType())
}
