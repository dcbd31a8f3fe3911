package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"phonefmt/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct {
	BaseEvent
}

func (pinged) EventName() string { return "pinged" }

func TestPublishRunsEverySubscriber(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	var calls atomic.Int32
	for range 3 {
		bus.Subscribe("pinged", HandlerFunc(func(context.Context, Event) error {
			calls.Add(1)
			return nil
		}))
	}
	bus.Subscribe("other", HandlerFunc(func(context.Context, Event) error {
		t.Error("handler for another event was called")
		return nil
	}))

	bus.Publish(context.Background(), pinged{NewBaseEvent()})
	bus.Wait()
	assert.Equal(t, int32(3), calls.Load())
}

func TestPublishOutlivesCanceledContext(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	seen := make(chan error, 1)
	bus.Subscribe("pinged", HandlerFunc(func(ctx context.Context, _ Event) error {
		seen <- ctx.Err()
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pinged{NewBaseEvent()})
	bus.Wait()
	assert.NoError(t, <-seen)
}

func TestPublishSyncReturnsHandlerError(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	boom := errors.New("boom")
	var calls atomic.Int32
	bus.Subscribe("pinged", HandlerFunc(func(context.Context, Event) error {
		calls.Add(1)
		return boom
	}))
	bus.Subscribe("pinged", HandlerFunc(func(context.Context, Event) error {
		calls.Add(1)
		return nil
	}))

	err := bus.PublishSync(context.Background(), pinged{NewBaseEvent()})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPublishSyncRecoversPanic(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	bus.Subscribe("pinged", HandlerFunc(func(context.Context, Event) error {
		panic("bad handler")
	}))

	err := bus.PublishSync(context.Background(), pinged{NewBaseEvent()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	bus.Publish(context.Background(), pinged{NewBaseEvent()})
	bus.Wait()
	assert.NoError(t, bus.PublishSync(context.Background(), pinged{NewBaseEvent()}))
}
