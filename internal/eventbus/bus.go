package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/kaminoclone/cobranca/pkg/retry"
)

// ErrBusClosed is returned by Publish once Shutdown has started.
var ErrBusClosed = errors.New("event bus is shut down")

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Stats() Stats
}

// Stats are process-lifetime counters. Dropped counts events refused because
// their channel was full.
type Stats struct {
	Published uint64 `json:"published"`
	Dropped   uint64 `json:"dropped"`
	Processed uint64 `json:"processed"`
	Failed    uint64 `json:"failed"`
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
	RetryDelay    time.Duration
}

type eventBus struct {
	channels  map[EventType]chan Event
	consumers map[EventType][]Consumer
	mu        sync.RWMutex
	wg        sync.WaitGroup
	cancel    context.CancelFunc
	logger    *logger.Logger
	cfg       Config
	started   bool
	closed    bool

	published atomic.Uint64
	dropped   atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
}

func New(log *logger.Logger, cfg *Config) EventBus {
	settings := Config{
		ChannelBuffer: 1000,
		MaxRetries:    5,
		RetryDelay:    time.Second,
	}
	if cfg != nil {
		settings = *cfg
	}
	if settings.ChannelBuffer < 0 {
		settings.ChannelBuffer = 0
	}
	if settings.MaxRetries < 1 {
		settings.MaxRetries = 1
	}
	if settings.RetryDelay <= 0 {
		settings.RetryDelay = time.Second
	}

	return &eventBus{
		channels:  make(map[EventType]chan Event),
		consumers: make(map[EventType][]Consumer),
		logger:    log,
		cfg:       settings,
	}
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return errors.New("cannot subscribe after the event bus has started")
	}

	if _, exists := eb.channels[eventType]; !exists {
		eb.channels[eventType] = make(chan Event, eb.cfg.ChannelBuffer)
	}
	eb.consumers[eventType] = append(eb.consumers[eventType], consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.started {
		return nil
	}

	// Workers outlive the caller's request context; only Shutdown stops them.
	workerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	eb.cancel = cancel

	for eventType, consumers := range eb.consumers {
		ch := eb.channels[eventType]

		for _, consumer := range consumers {
			workerCount := consumer.GetWorkerCount()
			eb.logger.Info(workerCtx, "Starting workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				eb.wg.Add(1)
				go eb.worker(workerCtx, ch, consumer, i)
			}
		}
	}

	eb.started = true
	eb.logger.Info(workerCtx, "Event bus started")

	return nil
}

// worker drains its channel until Shutdown closes it. A cancelled context
// abandons whatever is still buffered.
func (eb *eventBus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer eb.wg.Done()

	for {
		select {
		case <-ctx.Done():
			eb.logger.Debug(ctx, "Worker cancelled", "worker_id", workerID)
			return
		case event, ok := <-ch:
			if !ok {
				eb.logger.Debug(ctx, "Channel drained, worker stopping", "worker_id", workerID)
				return
			}
			eb.processEvent(ctx, event, consumer, workerID)
		}
	}
}

func (eb *eventBus) processEvent(ctx context.Context, event Event, consumer Consumer, workerID int) {
	eventCtx := ctx
	if event.ID != "" {
		eventCtx = logger.WithTraceID(eventCtx, event.ID)
	}
	if event.TenantID != "" {
		eventCtx = logger.WithTenantID(eventCtx, event.TenantID)
	}

	err := retry.Do(eventCtx, func() error {
		return consumer.Consume(eventCtx, event)
	},
		retry.WithMaxAttempts(eb.cfg.MaxRetries),
		retry.WithBaseDelay(eb.cfg.RetryDelay),
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, ErrInvalidPayload)
		}),
		retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
			eb.logger.Warn(eventCtx, "Event consumer failed, retrying",
				"event_type", event.Type,
				"attempt", attempt,
				"retry_in", wait.String(),
				"error", err,
			)
		}),
	)

	if err != nil {
		eb.failed.Add(1)
		eb.logger.Error(eventCtx, "Failed to process event",
			"event_type", event.Type,
			"worker_id", workerID,
			"error", err,
		)
		return
	}

	eb.processed.Add(1)
	eb.logger.Debug(eventCtx, "Event processed",
		"event_type", event.Type,
		"worker_id", workerID,
	)
}

// Publish never blocks. An event without a subscriber is ignored and an event
// arriving at a full channel is dropped; neither is an error.
func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	if event.TenantID == "" {
		event.TenantID = logger.GetTenantID(ctx)
	}

	// The read lock keeps Shutdown from closing the channel mid-send.
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}

	ch, exists := eb.channels[event.Type]
	if !exists {
		eb.logger.Warn(ctx, "No channel for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}

	select {
	case ch <- event:
		eb.published.Add(1)
		return nil
	default:
		eb.dropped.Add(1)
		eb.logger.Warn(ctx, "Event channel full, event dropped",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}
}

// Shutdown stops accepting events and lets the workers drain what is already
// buffered. If ctx expires first the remaining events are abandoned.
func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.logger.Info(ctx, "Shutting down event bus")

	eb.mu.Lock()
	if !eb.closed {
		eb.closed = true
		for _, ch := range eb.channels {
			close(ch)
		}
	}
	cancel := eb.cancel
	eb.mu.Unlock()

	done := make(chan struct{})
	go func() {
		eb.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if cancel != nil {
			cancel()
		}
		eb.logger.Info(ctx, "Event bus shutdown complete",
			"processed", eb.processed.Load(),
			"failed", eb.failed.Load(),
			"dropped", eb.dropped.Load(),
		)
		return nil
	case <-ctx.Done():
		if cancel != nil {
			cancel()
		}
		eb.logger.Warn(ctx, "Event bus shutdown timeout, pending events abandoned")
		return ctx.Err()
	}
}

func (eb *eventBus) Stats() Stats {
	return Stats{
		Published: eb.published.Load(),
		Dropped:   eb.dropped.Load(),
		Processed: eb.processed.Load(),
		Failed:    eb.failed.Load(),
	}
}
