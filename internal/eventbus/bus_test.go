package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingConsumer struct {
	mu       sync.Mutex
	seen     []string
	attempts atomic.Int32
	failWith error
}

func (c *countingConsumer) Consume(ctx context.Context, event Event) error {
	c.attempts.Add(1)
	if c.failWith != nil {
		return c.failWith
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, event.ID)
	return nil
}

func (c *countingConsumer) GetWorkerCount() int {
	return 2
}

func (c *countingConsumer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func startBus(t *testing.T, cfg *Config, consumer Consumer) EventBus {
	t.Helper()
	bus := New(logger.NewNop(), cfg)
	require.NoError(t, bus.Subscribe(EventTypeAudit, consumer))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = bus.Shutdown(ctx)
	})
	return bus
}

func TestEventBus_DeliversPublishedEvents(t *testing.T) {
	consumer := &countingConsumer{}
	bus := startBus(t, nil, consumer)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: id, Type: EventTypeAudit}))
	}

	assert.Eventually(t, func() bool { return consumer.count() == 3 }, time.Second, 5*time.Millisecond)
}

func TestEventBus_UnknownTypeIsIgnored(t *testing.T) {
	consumer := &countingConsumer{}
	bus := startBus(t, nil, consumer)

	err := bus.Publish(context.Background(), Event{ID: "x", Type: "unknown"})

	assert.NoError(t, err)
	assert.Never(t, func() bool { return consumer.count() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestEventBus_RetriesTransientErrors(t *testing.T) {
	consumer := &countingConsumer{failWith: errors.New("store unavailable")}
	bus := startBus(t, &Config{ChannelBuffer: 10, MaxRetries: 3, RetryDelay: time.Millisecond}, consumer)

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "a", Type: EventTypeAudit}))

	assert.Eventually(t, func() bool { return consumer.attempts.Load() == 3 }, time.Second, 5*time.Millisecond)
}

func TestEventBus_DoesNotRetryInvalidPayload(t *testing.T) {
	consumer := &countingConsumer{failWith: ErrInvalidPayload}
	bus := startBus(t, &Config{ChannelBuffer: 10, MaxRetries: 5, RetryDelay: time.Millisecond}, consumer)

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "a", Type: EventTypeAudit}))

	assert.Eventually(t, func() bool { return consumer.attempts.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return consumer.attempts.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestEventBus_FullChannelDropsEvent(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 1, MaxRetries: 1})
	require.NoError(t, bus.Subscribe(EventTypeAudit, &countingConsumer{}))

	// Not started, so nothing drains the channel.
	require.NoError(t, bus.Publish(context.Background(), Event{ID: "a", Type: EventTypeAudit}))
	assert.NoError(t, bus.Publish(context.Background(), Event{ID: "b", Type: EventTypeAudit}))

	stats := bus.Stats()
	assert.Equal(t, uint64(1), stats.Published)
	assert.Equal(t, uint64(1), stats.Dropped)
}

func TestEventBus_ShutdownDrainsBufferedEvents(t *testing.T) {
	consumer := &countingConsumer{}
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10, MaxRetries: 1})
	require.NoError(t, bus.Subscribe(EventTypeAudit, consumer))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: id, Type: EventTypeAudit}))
	}
	require.NoError(t, bus.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Shutdown(ctx))

	assert.Equal(t, 3, consumer.count())
	assert.Equal(t, uint64(3), bus.Stats().Processed)
}

func TestEventBus_PublishAfterShutdown(t *testing.T) {
	bus := startBus(t, nil, &countingConsumer{})
	require.NoError(t, bus.Shutdown(context.Background()))

	err := bus.Publish(context.Background(), Event{ID: "late", Type: EventTypeAudit})

	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestEventBus_SubscribeAfterStart(t *testing.T) {
	bus := startBus(t, nil, &countingConsumer{})

	err := bus.Subscribe(EventTypeAudit, &countingConsumer{})

	assert.Error(t, err)
}

func TestEventBus_FailedEventsAreCounted(t *testing.T) {
	consumer := &countingConsumer{failWith: ErrInvalidPayload}
	bus := startBus(t, &Config{ChannelBuffer: 10, MaxRetries: 2, RetryDelay: time.Millisecond}, consumer)

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "a", Type: EventTypeAudit}))

	assert.Eventually(t, func() bool { return bus.Stats().Failed == 1 }, time.Second, 5*time.Millisecond)
}

type tenantRecorder struct {
	tenants chan string
}

func (r *tenantRecorder) Consume(ctx context.Context, event Event) error {
	r.tenants <- logger.GetTenantID(ctx)
	return nil
}

func (r *tenantRecorder) GetWorkerCount() int {
	return 1
}

func TestEventBus_RestoresTenantIntoWorkerContext(t *testing.T) {
	recorder := &tenantRecorder{tenants: make(chan string, 1)}
	bus := startBus(t, nil, recorder)

	ctx := logger.WithTenantID(context.Background(), "tenant-7")
	require.NoError(t, bus.Publish(ctx, Event{ID: "a", Type: EventTypeAudit}))

	select {
	case tenant := <-recorder.tenants:
		assert.Equal(t, "tenant-7", tenant)
	case <-time.After(time.Second):
		t.Fatal("event was not consumed")
	}
}
