package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/boleto"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/retention"
	"github.com/kaminoclone/cobranca/pkg/money"
	"github.com/shopspring/decimal"
)

var chargeColumns = []string{
	ColCustomerDocument, ColAmount, ColDueDate, ColChargeKind,
	ColChargeTaxCode, ColDescription, ColReference, ColAction,
}

// ChargeTarget imports boletos keyed by (tenant, customer document, seu
// número). A row with tipo_tributacao goes through the retention calculator
// and the charge is issued for the net amount.
type ChargeTarget struct {
	customers  domain.CustomerRepository
	charges    domain.ChargeRepository
	calculator *retention.Calculator
	issuer     *boleto.Issuer
	audit      domain.AuditPublisher
	now        func() time.Time
}

func NewChargeTarget(
	customers domain.CustomerRepository,
	charges domain.ChargeRepository,
	calculator *retention.Calculator,
	issuer *boleto.Issuer,
	audit domain.AuditPublisher,
) *ChargeTarget {
	return &ChargeTarget{
		customers:  customers,
		charges:    charges,
		calculator: calculator,
		issuer:     issuer,
		audit:      audit,
		now:        time.Now,
	}
}

func (t *ChargeTarget) Entity() domain.EntityKind {
	return domain.EntityKindCharge
}

func (t *ChargeTarget) Columns() []string {
	return append([]string(nil), chargeColumns...)
}

func (t *ChargeTarget) Sample() []string {
	return []string{
		"12345678000199", "1500.00", "2025-12-31", string(domain.ChargeKindNormal),
		string(domain.TaxCategoryPrivateEntity), "Consultoria mensal", "NF-1001", string(domain.ImportModeUpsert),
	}
}

func (t *ChargeTarget) RequiredColumns() []string {
	return []string{ColCustomerDocument, ColAmount, ColDueDate}
}

func (t *ChargeTarget) Validate(row *domain.ImportRow) {
	ValidateCharge(row)
}

func (t *ChargeTarget) Lookup(ctx context.Context, tenantID string, row *domain.ImportRow) (any, error) {
	reference := row.Fields.Get(ColReference)
	if reference == "" {
		return nil, fmt.Errorf("%w: seu_numero is required to update a charge", ErrNoNaturalKey)
	}
	document := domain.NormalizeDocument(row.Fields.Get(ColCustomerDocument))

	charge, err := t.charges.FindChargeByReference(ctx, tenantID, document, reference)
	if errors.Is(err, domain.ErrChargeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return charge, nil
}

func (t *ChargeTarget) Create(ctx context.Context, tenantID string, row *domain.ImportRow) (string, error) {
	f := row.Fields
	document := domain.NormalizeDocument(f.Get(ColCustomerDocument))

	customer, err := t.customers.FindCustomerByDocument(ctx, tenantID, document)
	if err != nil {
		return "", fmt.Errorf("cliente_documento %s: %w", document, err)
	}

	gross, dueDate, kind, err := chargeValues(row)
	if err != nil {
		return "", err
	}

	breakdown, err := t.calculator.Calculate(ctx, tenantID, gross, domain.NormalizeTaxCategoryCode(f.Get(ColChargeTaxCode)), false)
	if err != nil {
		return "", err
	}

	now := t.now()
	charge := &domain.Charge{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		CustomerID:        customer.ID,
		CustomerDocument:  customer.Document,
		ExternalReference: f.Get(ColReference),
		Kind:              kind,
		DueDate:           dueDate,
		Description:       f.Get(ColDescription),
		Status:            domain.ChargeStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	applyAmounts(charge, gross, breakdown)

	if err := t.issuer.Issue(ctx, charge); err != nil {
		return "", err
	}
	if err := t.charges.CreateCharge(ctx, charge); err != nil {
		return "", fmt.Errorf("failed to create charge: %w", err)
	}

	t.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityCharge,
		EntityID: charge.ID,
		NewData:  domain.Snapshot(charge),
		Import:   true,
	})

	return fmt.Sprintf("charge %s created for %s", charge.OurNumber, charge.Amount.StringFixed(money.Places)), nil
}

// Update reissues an open charge with the row's amount and due date. Without
// tipo_tributacao the category already applied to the charge is reused.
func (t *ChargeTarget) Update(ctx context.Context, tenantID string, row *domain.ImportRow, existing any) (string, error) {
	current, ok := existing.(*domain.Charge)
	if !ok {
		return "", fmt.Errorf("unexpected charge lookup result %T", existing)
	}
	if !current.Editable() {
		return "", fmt.Errorf("%w: status %s", domain.ErrChargeNotEditable, current.Status)
	}

	f := row.Fields
	gross, dueDate, kind, err := chargeValues(row)
	if err != nil {
		return "", err
	}

	code := domain.NormalizeTaxCategoryCode(f.Get(ColChargeTaxCode))
	if code == "" && current.Retention != nil {
		code = current.Retention.CategoryCode
	}
	breakdown, err := t.calculator.Calculate(ctx, tenantID, gross, code, false)
	if err != nil {
		return "", err
	}

	updated := *current
	updated.DueDate = dueDate
	if f.Has(ColChargeKind) {
		updated.Kind = kind
	}
	if v := f.Get(ColDescription); v != "" {
		updated.Description = v
	}
	applyAmounts(&updated, gross, breakdown)
	t.issuer.Refresh(&updated)
	updated.UpdatedAt = t.now()

	if err := t.charges.UpdateCharge(ctx, &updated); err != nil {
		return "", fmt.Errorf("failed to update charge: %w", err)
	}

	t.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionUpdate,
		Entity:   domain.AuditEntityCharge,
		EntityID: updated.ID,
		OldData:  domain.Snapshot(current),
		NewData:  domain.Snapshot(&updated),
		Import:   true,
	})

	return fmt.Sprintf("charge %s updated to %s", updated.OurNumber, updated.Amount.StringFixed(money.Places)), nil
}

func chargeValues(row *domain.ImportRow) (decimal.Decimal, time.Time, domain.ChargeKind, error) {
	f := row.Fields

	gross, err := money.Parse(f.Get(ColAmount))
	if err != nil {
		return decimal.Zero, time.Time{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidAmount, err)
	}
	dueDate, err := time.Parse(DateLayout, f.Get(ColDueDate))
	if err != nil {
		return decimal.Zero, time.Time{}, "", fmt.Errorf("data_vencimento: %w", err)
	}
	kind, ok := ParseChargeKind(f.Get(ColChargeKind))
	if !ok {
		return decimal.Zero, time.Time{}, "", fmt.Errorf("%w: tipo_boleto %q", domain.ErrValidation, f.Get(ColChargeKind))
	}
	return money.Round(gross), dueDate, kind, nil
}

// applyAmounts makes the net amount collectible whenever a breakdown exists.
func applyAmounts(charge *domain.Charge, gross decimal.Decimal, breakdown *domain.RetentionBreakdown) {
	charge.GrossAmount = gross
	charge.Retention = breakdown
	charge.Amount = gross
	if breakdown != nil {
		charge.Amount = breakdown.NetAmount
	}
}
