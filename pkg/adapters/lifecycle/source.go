package lifecycle

import (
	"context"
	"log/slog"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/smartnotes/pkg/core"
)

// DefaultBuffer is the number of events held while no reader keeps up.
const DefaultBuffer = 100

// Subscriber is implemented by core.Controller.
type Subscriber interface {
	Subscribe(fn func(core.Event)) func()
}

// Source is a lifecycle.Source that emits Controller events.
//
// The Controller notifies listeners synchronously; Source decouples them by
// buffering into a channel that a lifecycle-managed goroutine forwards.
// When the buffer is full, events are dropped rather than blocking the Controller.
//
// NewSource and Stop must be called from the goroutine driving the Controller.
type Source struct {
	events      chan core.Event
	out         chan lifecycle.Event
	unsubscribe func()
	logger      *slog.Logger
	dropped     int
}

// NewSource subscribes to sub and returns a Source ready to Start.
func NewSource(sub Subscriber, buffer int, logger *slog.Logger) *Source {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Source{
		events: make(chan core.Event, buffer),
		out:    make(chan lifecycle.Event),
		logger: logger,
	}
	s.unsubscribe = sub.Subscribe(s.publish)
	return s
}

func (s *Source) publish(e core.Event) {
	select {
	case s.events <- e:
	default:
		s.dropped++
		s.logger.Warn("event buffer full, dropping event", "event", e.String(), "dropped", s.dropped)
	}
}

// Events implements lifecycle.Source.
func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Start implements lifecycle.Source.
func (s *Source) Start(ctx context.Context) error {
	// core.Event implements lifecycle.Event (has String())
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("event bridge failed", "error", err)
	}))
	return nil
}

// Stop unsubscribes from the Controller. Buffered events are still delivered,
// after which Events is closed.
func (s *Source) Stop() {
	if s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
	close(s.events)
}

var _ lifecycle.Source = (*Source)(nil)
