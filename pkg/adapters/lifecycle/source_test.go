package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/aretw0/smartnotes/pkg/adapters/lifecycle"
	"github.com/aretw0/smartnotes/pkg/core"
)

func receive(t *testing.T, src *adapter.Source) (core.Event, bool) {
	t.Helper()
	select {
	case e, ok := <-src.Events():
		if !ok {
			return core.Event{}, false
		}
		ce, isCore := e.(core.Event)
		require.True(t, isCore, "unexpected event type %T", e)
		return ce, true
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return core.Event{}, false
	}
}

func TestSource_ForwardsControllerEvents(t *testing.T) {
	c := core.NewController(core.NewStore(core.StoreOptions{}), nil, nil)
	src := adapter.NewSource(c, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	n := c.CreateNote()
	c.DeleteNote(n.ID)
	src.Stop()

	first, ok := receive(t, src)
	require.True(t, ok)
	assert.Equal(t, core.EventCreate, first.Type)
	assert.Equal(t, n.ID, first.ID)
	assert.Equal(t, "CREATE "+n.ID, first.String())

	second, ok := receive(t, src)
	require.True(t, ok)
	assert.Equal(t, core.EventDelete, second.Type)

	_, ok = receive(t, src)
	assert.False(t, ok, "events channel closes after Stop drains")
}

func TestSource_DropsWhenBufferFull(t *testing.T) {
	c := core.NewController(core.NewStore(core.StoreOptions{}), nil, nil)
	src := adapter.NewSource(c, 1, nil)

	// Not started: the single slot fills and later events are dropped.
	c.SetSearchQuery("a")
	c.SetSearchQuery("b")
	c.SetSearchQuery("c")
	src.Stop()
	src.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	e, ok := receive(t, src)
	require.True(t, ok)
	assert.Equal(t, core.EventFilter, e.Type)

	_, ok = receive(t, src)
	assert.False(t, ok)
}
