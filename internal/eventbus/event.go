package eventbus

import (
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
)

type EventType string

const (
	EventTypeAudit EventType = "audit"
)

// Event is delivered to every consumer subscribed to its Type. TenantID is
// restored into the worker context so consumer logs carry it.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TenantID  string      `json:"tenant_id,omitempty"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type AuditEvent struct {
	Entry domain.AuditEntry `json:"entry"`
}
