package eventbus

import (
	"context"
	"fmt"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

// AuditConsumer writes audit entries. Each event is applied at most once.
type AuditConsumer struct {
	repo        domain.AuditRepository
	logger      *logger.Logger
	workerCount int
}

func NewAuditConsumer(repo domain.AuditRepository, log *logger.Logger, workerCount int) *AuditConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &AuditConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *AuditConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(AuditEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for audit event",
			"event_id", event.ID,
		)
		return fmt.Errorf("%w: %T", ErrInvalidPayload, event.Payload)
	}

	ctx = logger.WithTenantID(ctx, payload.Entry.TenantID)

	if err := ac.repo.AppendAudit(ctx, payload.Entry); err != nil {
		ac.logger.Error(ctx, "Failed to append audit entry",
			"event_id", event.ID,
			"entity", payload.Entry.Entity,
			"error", err,
		)
		return err
	}

	if err := ac.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Audit entry stored",
		"event_id", event.ID,
		"action", payload.Entry.Action,
		"entity", payload.Entry.Entity,
		"entity_id", payload.Entry.EntityID,
	)

	return nil
}

func (ac *AuditConsumer) GetWorkerCount() int {
	return ac.workerCount
}
