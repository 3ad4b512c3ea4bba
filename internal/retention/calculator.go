package retention

import (
	"context"
	"fmt"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/money"
	"github.com/shopspring/decimal"
)

// Compute derives the withheld amounts for gross under category.
//
// It returns a nil breakdown (no retention) when category is nil or is
// SEM_RETENCAO and the caller did not ask for a breakdown explicitly. Every
// tax amount is computed on gross and rounded half-up on its own, so the
// total is always the exact sum of the four rounded parts.
func Compute(gross decimal.Decimal, category *domain.TaxCategory, explicit bool) (*domain.RetentionBreakdown, error) {
	gross, err := positiveCents(gross)
	if err != nil {
		return nil, err
	}

	if category == nil {
		if explicit {
			return nil, fmt.Errorf("%w: retention requested without a tax category", domain.ErrUnknownTaxCategory)
		}
		return nil, nil
	}
	if category.Code == domain.TaxCategoryNone && !explicit {
		return nil, nil
	}

	rates := category.Rates

	b := &domain.RetentionBreakdown{
		CategoryCode:    category.Code,
		CategoryVersion: category.Version,
		Rates:           rates,
		GrossAmount:     gross,
		PIS:             money.Percent(gross, rates.PIS),
		COFINS:          money.Percent(gross, rates.COFINS),
		CSLL:            money.Percent(gross, rates.CSLL),
		IR:              money.Percent(gross, rates.IR),
		ISS:             money.Percent(gross, rates.ISS),
	}
	b.TotalWithheld = b.PIS.Add(b.COFINS).Add(b.CSLL).Add(b.IR)
	b.NetAmount = gross.Sub(b.TotalWithheld)

	if b.NetAmount.IsNegative() {
		b.Warnings = append(b.Warnings, fmt.Sprintf(
			"withheld total %s exceeds gross amount %s", b.TotalWithheld.StringFixed(money.Places), gross.StringFixed(money.Places)))
	}

	return b, nil
}

// Calculator resolves the active tax category version before computing.
type Calculator struct {
	categories domain.TaxCategoryRepository
}

func NewCalculator(categories domain.TaxCategoryRepository) *Calculator {
	return &Calculator{categories: categories}
}

// Resolve returns the active version of code for the tenant. An empty code
// resolves to nil unless explicit is set, in which case it is an error.
func (c *Calculator) Resolve(ctx context.Context, tenantID string, code domain.TaxCategoryCode, explicit bool) (*domain.TaxCategory, error) {
	if code == "" {
		if explicit {
			return nil, fmt.Errorf("%w: retention requested without a tax category", domain.ErrUnknownTaxCategory)
		}
		return nil, nil
	}

	category, err := c.categories.GetActiveTaxCategory(ctx, tenantID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tax category %q: %w", code, err)
	}
	return category, nil
}

// Calculate validates gross before touching the category store so an
// invalid amount never costs a lookup.
func (c *Calculator) Calculate(ctx context.Context, tenantID string, gross decimal.Decimal, code domain.TaxCategoryCode, explicit bool) (*domain.RetentionBreakdown, error) {
	if _, err := positiveCents(gross); err != nil {
		return nil, err
	}

	category, err := c.Resolve(ctx, tenantID, code, explicit)
	if err != nil {
		return nil, err
	}
	return Compute(gross, category, explicit)
}

// positiveCents rounds gross to cents and rejects anything that does not
// survive as at least one cent.
func positiveCents(gross decimal.Decimal) (decimal.Decimal, error) {
	rounded := money.Round(gross)
	if !rounded.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: gross amount must be at least 0.01, got %s", domain.ErrInvalidAmount, gross.String())
	}
	return rounded, nil
}
