package service

import (
	"context"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

type AuditService interface {
	ListAudit(ctx context.Context, tenantID string, limit int) ([]domain.AuditEntry, error)
}

type auditService struct {
	repo   domain.AuditRepository
	logger *logger.Logger
}

func NewAuditService(repo domain.AuditRepository, log *logger.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: log,
	}
}

// ListAudit returns the newest entries first.
func (s *auditService) ListAudit(ctx context.Context, tenantID string, limit int) ([]domain.AuditEntry, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	if limit < 1 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}

	entries, err := s.repo.ListAudit(ctx, tenantID, limit)
	if err != nil {
		s.logger.Error(ctx, "Failed to list audit entries",
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Audit entries retrieved",
		"limit", limit,
		"returned", len(entries),
	)

	return entries, nil
}
