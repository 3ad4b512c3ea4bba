package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

type TaxCategoryService interface {
	ListTaxCategories(ctx context.Context, tenantID string) ([]domain.TaxCategory, error)
	PublishTaxCategory(ctx context.Context, tenantID string, category domain.TaxCategory) (*domain.TaxCategory, error)
}

type taxCategoryService struct {
	categories domain.TaxCategoryRepository
	audit      domain.AuditPublisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewTaxCategoryService(categories domain.TaxCategoryRepository, audit domain.AuditPublisher, log *logger.Logger) TaxCategoryService {
	return &taxCategoryService{
		categories: categories,
		audit:      audit,
		logger:     log,
		now:        time.Now,
	}
}

func (s *taxCategoryService) ListTaxCategories(ctx context.Context, tenantID string) ([]domain.TaxCategory, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	categories, err := s.categories.ListActiveTaxCategories(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list tax categories",
			"error", err,
		)
		return nil, err
	}
	return categories, nil
}

// PublishTaxCategory stores a new version for the tenant. Existing versions
// are never modified, so breakdowns computed earlier stay reproducible.
func (s *taxCategoryService) PublishTaxCategory(ctx context.Context, tenantID string, category domain.TaxCategory) (*domain.TaxCategory, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	category.TenantID = tenantID
	category.Code = domain.NormalizeTaxCategoryCode(string(category.Code))
	category.Version = 0
	category.CreatedAt = s.now()
	if category.EffectiveFrom.IsZero() {
		category.EffectiveFrom = category.CreatedAt
	}
	if category.Name == "" {
		category.Name = string(category.Code)
	}

	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("tax category %q: %w", category.Code, err)
	}

	if err := s.categories.SaveTaxCategoryVersion(ctx, &category); err != nil {
		s.logger.Error(ctx, "Failed to save tax category version",
			"code", category.Code,
			"error", err,
		)
		return nil, err
	}

	s.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityTaxCategory,
		EntityID: fmt.Sprintf("%s@%d", category.Code, category.Version),
		NewData:  domain.Snapshot(category),
	})

	s.logger.Info(ctx, "Tax category version published",
		"code", category.Code,
		"version", category.Version,
		"effective_from", category.EffectiveFrom,
	)

	return &category, nil
}
