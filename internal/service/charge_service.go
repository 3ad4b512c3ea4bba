package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/boleto"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/retention"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/kaminoclone/cobranca/pkg/money"
	"github.com/shopspring/decimal"
)

// IssueChargeInput identifies the customer by ID or by document. Retention is
// only computed when TaxCategory is set or ApplyRetention asks for it.
type IssueChargeInput struct {
	CustomerID        string
	CustomerDocument  string
	GrossAmount       decimal.Decimal
	DueDate           time.Time
	Kind              domain.ChargeKind
	Description       string
	ExternalReference string
	ApplyRetention    bool
	TaxCategory       domain.TaxCategoryCode
}

// ChangeStatusInput carries the action plus the fields some actions need:
// DueDate for alterar-vencimento, PaidAmount and PaidAt for
// registrar-pagamento (both default to the charge amount and now).
type ChangeStatusInput struct {
	Action     domain.ChargeAction
	DueDate    time.Time
	PaidAmount decimal.Decimal
	PaidAt     time.Time
}

type ChargeService interface {
	IssueCharge(ctx context.Context, tenantID string, input IssueChargeInput) (*domain.Charge, error)
	GetCharge(ctx context.Context, tenantID, id string) (*domain.Charge, error)
	ListCharges(ctx context.Context, tenantID string) ([]domain.Charge, error)
	ChangeStatus(ctx context.Context, tenantID, id string, input ChangeStatusInput) (*domain.Charge, error)
	CancelCharge(ctx context.Context, tenantID, id string) (*domain.Charge, error)
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
	PreviewRetention(ctx context.Context, tenantID string, gross decimal.Decimal, code domain.TaxCategoryCode, explicit bool) (*domain.RetentionBreakdown, error)
}

type chargeService struct {
	customers  domain.CustomerRepository
	charges    domain.ChargeRepository
	calculator *retention.Calculator
	issuer     *boleto.Issuer
	audit      domain.AuditPublisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewChargeService(
	customers domain.CustomerRepository,
	charges domain.ChargeRepository,
	calculator *retention.Calculator,
	issuer *boleto.Issuer,
	audit domain.AuditPublisher,
	log *logger.Logger,
) ChargeService {
	return &chargeService{
		customers:  customers,
		charges:    charges,
		calculator: calculator,
		issuer:     issuer,
		audit:      audit,
		logger:     log,
		now:        time.Now,
	}
}

func (s *chargeService) IssueCharge(ctx context.Context, tenantID string, input IssueChargeInput) (*domain.Charge, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	gross := money.Round(input.GrossAmount)
	if !gross.IsPositive() {
		return nil, fmt.Errorf("%w: gross amount must be at least 0.01, got %s", domain.ErrInvalidAmount, input.GrossAmount.String())
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due_date is required", domain.ErrValidation)
	}
	kind := input.Kind
	if kind == "" {
		kind = domain.ChargeKindNormal
	}
	if kind != domain.ChargeKindNormal && kind != domain.ChargeKindHybrid {
		return nil, fmt.Errorf("%w: kind must be NORMAL or HIBRIDO, got %q", domain.ErrValidation, kind)
	}

	customer, err := s.findCustomer(ctx, tenantID, input.CustomerID, input.CustomerDocument)
	if err != nil {
		return nil, err
	}

	code := domain.NormalizeTaxCategoryCode(string(input.TaxCategory))
	breakdown, err := s.calculator.Calculate(ctx, tenantID, gross, code, input.ApplyRetention)
	if err != nil {
		s.logger.Warn(ctx, "Retention refused charge issuance",
			"customer_id", customer.ID,
			"tax_category", code,
			"error", err,
		)
		return nil, err
	}

	now := s.now()
	charge := &domain.Charge{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		CustomerID:        customer.ID,
		CustomerDocument:  customer.Document,
		ExternalReference: strings.TrimSpace(input.ExternalReference),
		Kind:              kind,
		GrossAmount:       gross,
		Amount:            gross,
		Retention:         breakdown,
		DueDate:           input.DueDate,
		Description:       input.Description,
		Status:            domain.ChargeStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if breakdown != nil {
		charge.Amount = breakdown.NetAmount
	}

	if err := s.issuer.Issue(ctx, charge); err != nil {
		s.logger.Error(ctx, "Failed to issue charge",
			"customer_id", customer.ID,
			"error", err,
		)
		return nil, err
	}
	if err := s.charges.CreateCharge(ctx, charge); err != nil {
		s.logger.Error(ctx, "Failed to store charge",
			"customer_id", customer.ID,
			"error", err,
		)
		return nil, err
	}

	s.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityCharge,
		EntityID: charge.ID,
		NewData:  domain.Snapshot(charge),
	})

	s.logger.Info(ctx, "Charge issued",
		"charge_id", charge.ID,
		"our_number", charge.OurNumber,
		"amount", charge.Amount.StringFixed(money.Places),
		"retention", breakdown != nil,
	)

	return charge, nil
}

func (s *chargeService) findCustomer(ctx context.Context, tenantID, id, document string) (*domain.Customer, error) {
	switch {
	case id != "":
		return s.customers.FindCustomerByID(ctx, tenantID, id)
	case document != "":
		return s.customers.FindCustomerByDocument(ctx, tenantID, domain.NormalizeDocument(document))
	default:
		return nil, fmt.Errorf("%w: customer_id or customer_document is required", domain.ErrValidation)
	}
}

func (s *chargeService) ListCharges(ctx context.Context, tenantID string) ([]domain.Charge, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	charges, err := s.charges.ListCharges(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list charges",
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Charges retrieved",
		"total", len(charges),
	)

	return charges, nil
}

// PreviewRetention runs the calculator without issuing anything. A nil
// breakdown means the charge would be issued without retention.
func (s *chargeService) PreviewRetention(ctx context.Context, tenantID string, gross decimal.Decimal, code domain.TaxCategoryCode, explicit bool) (*domain.RetentionBreakdown, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	code = domain.NormalizeTaxCategoryCode(string(code))
	breakdown, err := s.calculator.Calculate(ctx, tenantID, gross, code, explicit)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidAmount) && !errors.Is(err, domain.ErrUnknownTaxCategory) {
			s.logger.Error(ctx, "Failed to preview retention",
				"tax_category", code,
				"error", err,
			)
		}
		return nil, err
	}
	return breakdown, nil
}

func (s *chargeService) GetCharge(ctx context.Context, tenantID, id string) (*domain.Charge, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	charge, err := s.charges.FindChargeByID(ctx, tenantID, id)
	if err != nil {
		if !errors.Is(err, domain.ErrChargeNotFound) {
			s.logger.Error(ctx, "Failed to find charge",
				"charge_id", id,
				"error", err,
			)
		}
		return nil, err
	}
	return charge, nil
}

func (s *chargeService) ChangeStatus(ctx context.Context, tenantID, id string, input ChangeStatusInput) (*domain.Charge, error) {
	current, err := s.GetCharge(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	next, err := current.NextStatus(input.Action)
	if err != nil {
		s.logger.Debug(ctx, "Charge status change refused",
			"charge_id", id,
			"status", current.Status,
			"action", input.Action,
			"error", err,
		)
		return nil, err
	}
	// Cancelling twice is a no-op.
	if input.Action == domain.ChargeActionCancel && current.Status == domain.ChargeStatusCancelled {
		return current, nil
	}

	now := s.now()
	updated := *current
	updated.Status = next
	updated.UpdatedAt = now

	switch input.Action {
	case domain.ChargeActionPay:
		paid := money.Round(input.PaidAmount)
		if paid.IsZero() {
			paid = current.Amount
		}
		if !paid.IsPositive() {
			return nil, fmt.Errorf("%w: paid amount must be greater than zero, got %s", domain.ErrInvalidAmount, input.PaidAmount.String())
		}
		paidAt := input.PaidAt
		if paidAt.IsZero() {
			paidAt = now
		}
		updated.PaidAmount = decimal.NewNullDecimal(paid)
		updated.PaidAt = &paidAt
	case domain.ChargeActionChangeDueDate:
		if input.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: due_date is required to change the due date", domain.ErrValidation)
		}
		updated.DueDate = input.DueDate
		if updated.Status == domain.ChargeStatusOverdue && !input.DueDate.Before(startOfDay(now)) {
			updated.Status = domain.ChargeStatusPending
		}
		s.issuer.Refresh(&updated)
	}

	if err := s.charges.UpdateCharge(ctx, &updated); err != nil {
		s.logger.Error(ctx, "Failed to update charge status",
			"charge_id", id,
			"action", input.Action,
			"error", err,
		)
		return nil, err
	}

	s.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionUpdate,
		Entity:   domain.AuditEntityCharge,
		EntityID: updated.ID,
		OldData:  domain.Snapshot(current),
		NewData:  domain.Snapshot(&updated),
	})

	s.logger.Info(ctx, "Charge status changed",
		"charge_id", updated.ID,
		"action", input.Action,
		"from", current.Status,
		"to", updated.Status,
	)

	return &updated, nil
}

// CancelCharge is a soft delete: the charge stays stored as CANCELADO.
func (s *chargeService) CancelCharge(ctx context.Context, tenantID, id string) (*domain.Charge, error) {
	return s.ChangeStatus(ctx, tenantID, id, ChangeStatusInput{Action: domain.ChargeActionCancel})
}

// MarkOverdue moves every PENDENTE charge whose due date is before the day
// of now to VENCIDO, across all tenants, and returns how many changed.
func (s *chargeService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	changed, err := s.charges.MarkChargesOverdue(ctx, startOfDay(now), now)
	if err != nil {
		s.logger.Error(ctx, "Failed to mark overdue charges",
			"error", err,
		)
		return 0, err
	}

	for i := range changed {
		charge := &changed[i]
		previous := *charge
		previous.Status = domain.ChargeStatusPending

		s.audit.PublishAudit(logger.WithTenantID(ctx, charge.TenantID), domain.AuditEntry{
			TenantID: charge.TenantID,
			Action:   domain.AuditActionUpdate,
			Entity:   domain.AuditEntityCharge,
			EntityID: charge.ID,
			OldData:  domain.Snapshot(&previous),
			NewData:  domain.Snapshot(charge),
		})
	}

	if len(changed) > 0 {
		s.logger.Info(ctx, "Charges marked overdue",
			"total", len(changed),
		)
	}

	return len(changed), nil
}

// startOfDay truncates t to midnight UTC of its calendar day. Due dates are
// stored as plain dates at midnight UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
