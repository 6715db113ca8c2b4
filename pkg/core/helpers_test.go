package core_test

import (
	"fmt"
	"time"

	"github.com/aretw0/smartnotes/pkg/core"
)

// fakeClock advances by one second on every reading.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// sequentialIDs returns n-1, n-2, ... so tests can predict ids.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n-%d", n)
	}
}

func newTestStore() *core.Store {
	return core.NewStore(core.StoreOptions{
		Now:   newFakeClock().Now,
		NewID: sequentialIDs(),
	})
}

// stubSurface records commands and returns whatever content was last set on it.
type stubSurface struct {
	content  string
	commands []core.FormatCommand
	reads    int
}

func (s *stubSurface) Apply(cmd core.FormatCommand) error {
	s.commands = append(s.commands, cmd)
	return nil
}

func (s *stubSurface) CurrentContent() string {
	s.reads++
	return s.content
}

func (s *stubSurface) Reset(content string) {
	s.content = content
}
