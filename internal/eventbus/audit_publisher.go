package eventbus

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

// AuditPublisher puts audit entries on the bus. Publishing errors are logged
// and swallowed so the audit trail never fails a request.
type AuditPublisher struct {
	bus    EventBus
	logger *logger.Logger
	now    func() time.Time
}

func NewAuditPublisher(bus EventBus, log *logger.Logger) *AuditPublisher {
	return &AuditPublisher{
		bus:    bus,
		logger: log,
		now:    time.Now,
	}
}

func (p *AuditPublisher) PublishAudit(ctx context.Context, entry domain.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.TenantID == "" {
		entry.TenantID = logger.GetTenantID(ctx)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = p.now()
	}

	event := Event{
		ID:        entry.ID,
		Type:      EventTypeAudit,
		TenantID:  entry.TenantID,
		Payload:   AuditEvent{Entry: entry},
		Timestamp: entry.CreatedAt,
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		p.logger.Warn(ctx, "Failed to publish audit event",
			"event_id", event.ID,
			"entity", entry.Entity,
			"error", err,
		)
	}
}
