package eventbus

import (
	"context"
	"errors"
)

// ErrInvalidPayload marks an event its consumer can never process; the bus
// does not retry it.
var ErrInvalidPayload = errors.New("invalid event payload")

type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
