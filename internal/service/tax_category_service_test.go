package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/retention"
	"github.com/kaminoclone/cobranca/internal/storage"
	"github.com/kaminoclone/cobranca/mocks"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rates(pis, cofins, csll, ir string) domain.TaxRates {
	return domain.TaxRates{
		PIS:    decimal.RequireFromString(pis),
		COFINS: decimal.RequireFromString(cofins),
		CSLL:   decimal.RequireFromString(csll),
		IR:     decimal.RequireFromString(ir),
	}
}

func TestPublishTaxCategory_NewVersionBecomesActive(t *testing.T) {
	// Setup
	store := storage.NewMemoryStore()
	audit := mocks.NewMockAuditPublisher(t)
	svc := NewTaxCategoryService(store, audit, logger.New("info"))
	ctx := context.Background()

	// Mock expectations
	audit.EXPECT().
		PublishAudit(mock.Anything, mock.MatchedBy(func(e domain.AuditEntry) bool {
			return e.Entity == domain.AuditEntityTaxCategory && e.EntityID == "PJ_PRIVADA@2"
		})).
		Return().
		Once()

	// Execute
	published, err := svc.PublishTaxCategory(ctx, tenantID, domain.TaxCategory{
		Code:  "pj_privada",
		Rates: rates("1", "2", "3", "4"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, published.Version)
	assert.Equal(t, tenantID, published.TenantID)
	assert.Equal(t, "PJ_PRIVADA", published.Name)

	breakdown, err := retention.NewCalculator(store).Calculate(ctx, tenantID, decimal.NewFromInt(1000), domain.TaxCategoryPrivateEntity, false)
	require.NoError(t, err)
	assert.Equal(t, 2, breakdown.CategoryVersion)
	assert.Equal(t, "900.00", breakdown.NetAmount.StringFixed(2))

	other, err := retention.NewCalculator(store).Calculate(ctx, "tenant-2", decimal.NewFromInt(1000), domain.TaxCategoryPrivateEntity, false)
	require.NoError(t, err)
	assert.Equal(t, 1, other.CategoryVersion)
}

func TestPublishTaxCategory_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		category domain.TaxCategory
	}{
		{"missing code", domain.TaxCategory{Rates: rates("1", "1", "1", "1")}},
		{"negative rate", domain.TaxCategory{Code: "CUSTOM", Rates: rates("-1", "0", "0", "0")}},
		{"no-retention with rates", domain.TaxCategory{Code: domain.TaxCategoryNone, Rates: rates("0", "0", "0", "1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := mocks.NewMockTaxCategoryRepository(t)
			svc := NewTaxCategoryService(categories, mocks.NewMockAuditPublisher(t), logger.NewNop())

			_, err := svc.PublishTaxCategory(context.Background(), tenantID, tt.category)

			assert.ErrorIs(t, err, domain.ErrInvalidTaxCategory)
		})
	}
}

func TestPublishTaxCategory_StoreError(t *testing.T) {
	categories := mocks.NewMockTaxCategoryRepository(t)
	svc := NewTaxCategoryService(categories, mocks.NewMockAuditPublisher(t), logger.NewNop())
	dbErr := errors.New("database error")

	categories.EXPECT().SaveTaxCategoryVersion(mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := svc.PublishTaxCategory(context.Background(), tenantID, domain.TaxCategory{Code: "CUSTOM"})

	assert.ErrorIs(t, err, dbErr)
}

func TestListTaxCategories(t *testing.T) {
	svc := NewTaxCategoryService(storage.NewMemoryStore(), mocks.NewMockAuditPublisher(t), logger.NewNop())

	categories, err := svc.ListTaxCategories(context.Background(), tenantID)

	require.NoError(t, err)
	codes := make([]domain.TaxCategoryCode, 0, len(categories))
	for _, c := range categories {
		codes = append(codes, c.Code)
	}
	assert.ElementsMatch(t, []domain.TaxCategoryCode{
		domain.TaxCategoryNone,
		domain.TaxCategoryPrivateEntity,
		domain.TaxCategorySimplesLocal,
		domain.TaxCategoryFederalAgency,
	}, codes)
}
