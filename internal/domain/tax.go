package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TaxCategoryCode string

const (
	TaxCategoryNone          TaxCategoryCode = "SEM_RETENCAO"
	TaxCategoryPrivateEntity TaxCategoryCode = "PJ_PRIVADA"
	TaxCategorySimplesLocal  TaxCategoryCode = "SIMPLES_ORGAO_ME"
	TaxCategoryFederalAgency TaxCategoryCode = "ORGAO_FEDERAL"
)

// TaxRates are percentages: 0.65 means 0.65%.
type TaxRates struct {
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	CSLL   decimal.Decimal `json:"csll"`
	IR     decimal.Decimal `json:"ir"`
	ISS    decimal.Decimal `json:"iss"`
}

// Withheld is the sum of the four federal rates. ISS is informational.
func (r TaxRates) Withheld() decimal.Decimal {
	return r.PIS.Add(r.COFINS).Add(r.CSLL).Add(r.IR)
}

func (r TaxRates) IsZero() bool {
	return r.PIS.IsZero() && r.COFINS.IsZero() && r.CSLL.IsZero() && r.IR.IsZero()
}

// TaxCategory is one version of a withholding rule. Versions are immutable;
// changing rates publishes a new version.
type TaxCategory struct {
	TenantID      string          `json:"tenant_id,omitempty"`
	Code          TaxCategoryCode `json:"code"`
	Name          string          `json:"name"`
	Rates         TaxRates        `json:"rates"`
	Version       int             `json:"version"`
	EffectiveFrom time.Time       `json:"effective_from"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (c TaxCategory) Validate() error {
	if c.Code == "" {
		return ErrInvalidTaxCategory
	}
	for _, rate := range []decimal.Decimal{c.Rates.PIS, c.Rates.COFINS, c.Rates.CSLL, c.Rates.IR, c.Rates.ISS} {
		if rate.IsNegative() {
			return ErrInvalidTaxCategory
		}
	}
	if c.Code == TaxCategoryNone && !c.Rates.IsZero() {
		return ErrInvalidTaxCategory
	}
	return nil
}

// RetentionBreakdown is attached to a charge or service invoice and keeps the
// rates it was computed with so the arithmetic can be reproduced later.
type RetentionBreakdown struct {
	CategoryCode    TaxCategoryCode `json:"tax_category"`
	CategoryVersion int             `json:"tax_category_version"`
	Rates           TaxRates        `json:"rates"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	PIS             decimal.Decimal `json:"pis"`
	COFINS          decimal.Decimal `json:"cofins"`
	CSLL            decimal.Decimal `json:"csll"`
	IR              decimal.Decimal `json:"ir"`
	ISS             decimal.Decimal `json:"iss"`
	TotalWithheld   decimal.Decimal `json:"total_withheld"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// DefaultTaxCategories are the rules every tenant starts with.
func DefaultTaxCategories(effectiveFrom time.Time) []TaxCategory {
	pct := decimal.RequireFromString
	categories := []TaxCategory{
		{
			Code: TaxCategoryNone,
			Name: "Sem Retenção",
		},
		{
			Code: TaxCategoryPrivateEntity,
			Name: "PJ Privada Fora do Simples",
			Rates: TaxRates{
				PIS: pct("0.65"), COFINS: pct("3.00"), CSLL: pct("1.00"), IR: pct("1.50"), ISS: pct("2.50"),
			},
		},
		{
			Code: TaxCategorySimplesLocal,
			Name: "Simples / Órgãos Municipais e Estaduais",
			Rates: TaxRates{
				IR: pct("1.50"), ISS: pct("2.50"),
			},
		},
		{
			Code: TaxCategoryFederalAgency,
			Name: "Órgãos Públicos Federais",
			Rates: TaxRates{
				PIS: pct("0.65"), COFINS: pct("3.00"), CSLL: pct("1.00"), IR: pct("4.80"), ISS: pct("2.50"),
			},
		},
	}

	for i := range categories {
		categories[i].Version = 1
		categories[i].EffectiveFrom = effectiveFrom
		categories[i].CreatedAt = effectiveFrom
	}
	return categories
}

func init() {
	// Amounts and rates go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// NormalizeTaxCategoryCode trims and uppercases a code taken from user input.
func NormalizeTaxCategoryCode(raw string) TaxCategoryCode {
	return TaxCategoryCode(strings.ToUpper(strings.TrimSpace(raw)))
}
