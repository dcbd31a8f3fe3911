package events

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"phonefmt/platform/logger"

	"golang.org/x/sync/errgroup"
)

// InMemoryBus delivers events to handlers in the same process.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
	pending  sync.WaitGroup
}

// NewInMemoryBus returns an empty bus that logs handler failures to log.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

func (b *InMemoryBus) subscribers(eventName string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.handlers[eventName])
}

// Publish runs every handler in its own goroutine. The handlers get a context
// that is not canceled with ctx, so a finished request does not abort them.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	handlers := b.subscribers(event.EventName())
	if len(handlers) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	for _, h := range handlers {
		b.pending.Add(1)
		go func() {
			defer b.pending.Done()
			if err := run(detached, h, event); err != nil {
				b.log.WithContext(detached).Error("event handler failed",
					"event", event.EventName(),
					"error", err,
				)
			}
		}()
	}
}

// PublishSync runs every handler concurrently and returns the first error
// after all of them finished.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	var g errgroup.Group
	for _, h := range b.subscribers(event.EventName()) {
		g.Go(func() error {
			return run(ctx, h, event)
		})
	}
	return g.Wait()
}

// Wait blocks until handlers started by Publish have returned.
func (b *InMemoryBus) Wait() {
	b.pending.Wait()
}

func run(ctx context.Context, h Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler for %s panicked: %v", event.EventName(), r)
		}
	}()
	return h.Handle(ctx, event)
}

var _ Bus = (*InMemoryBus)(nil)
