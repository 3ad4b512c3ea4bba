package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/shopspring/decimal"
)

// DefaultInvoiceTerm is the due date offset of the boleto attached to a
// service invoice when the request does not set one.
const DefaultInvoiceTerm = 30 * 24 * time.Hour

// IssueServiceInvoiceInput defaults TaxCategory to the customer's category.
type IssueServiceInvoiceInput struct {
	CustomerID     string
	Service        string
	GrossAmount    decimal.Decimal
	DueDate        time.Time
	Kind           domain.ChargeKind
	ApplyRetention bool
	TaxCategory    domain.TaxCategoryCode
}

type ServiceInvoiceService interface {
	IssueServiceInvoice(ctx context.Context, tenantID string, input IssueServiceInvoiceInput) (*domain.ServiceInvoice, *domain.Charge, error)
	ListServiceInvoices(ctx context.Context, tenantID string) ([]domain.ServiceInvoice, error)
}

type serviceInvoiceService struct {
	customers domain.CustomerRepository
	invoices  domain.ServiceInvoiceRepository
	charges   ChargeService
	audit     domain.AuditPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewServiceInvoiceService(
	customers domain.CustomerRepository,
	invoices domain.ServiceInvoiceRepository,
	charges ChargeService,
	audit domain.AuditPublisher,
	log *logger.Logger,
) ServiceInvoiceService {
	return &serviceInvoiceService{
		customers: customers,
		invoices:  invoices,
		charges:   charges,
		audit:     audit,
		logger:    log,
		now:       time.Now,
	}
}

// IssueServiceInvoice issues the boleto for the net amount first and records
// the invoice with the same breakdown, so both always agree.
func (s *serviceInvoiceService) IssueServiceInvoice(ctx context.Context, tenantID string, input IssueServiceInvoiceInput) (*domain.ServiceInvoice, *domain.Charge, error) {
	if tenantID == "" {
		return nil, nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	if strings.TrimSpace(input.Service) == "" {
		return nil, nil, fmt.Errorf("%w: service is required", domain.ErrValidation)
	}
	if input.CustomerID == "" {
		return nil, nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}

	customer, err := s.customers.FindCustomerByID(ctx, tenantID, input.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	code := input.TaxCategory
	if code == "" {
		code = customer.TaxCategory
	}

	seq, err := s.invoices.NextServiceInvoiceNumber(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	number := fmt.Sprintf("%06d", seq)

	issuedAt := s.now()
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = issuedAt.Add(DefaultInvoiceTerm).Truncate(24 * time.Hour)
	}

	charge, err := s.charges.IssueCharge(ctx, tenantID, IssueChargeInput{
		CustomerID:        customer.ID,
		GrossAmount:       input.GrossAmount,
		DueDate:           dueDate,
		Kind:              input.Kind,
		Description:       fmt.Sprintf("NFS-e %s - %s", number, strings.TrimSpace(input.Service)),
		ExternalReference: "NFSE-" + number,
		ApplyRetention:    input.ApplyRetention,
		TaxCategory:       code,
	})
	if err != nil {
		return nil, nil, err
	}

	invoice := &domain.ServiceInvoice{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CustomerID:  customer.ID,
		Number:      number,
		Service:     strings.TrimSpace(input.Service),
		GrossAmount: charge.GrossAmount,
		Retention:   charge.Retention,
		NetAmount:   charge.Amount,
		ChargeID:    charge.ID,
		IssuedAt:    issuedAt,
	}

	if err := s.invoices.CreateServiceInvoice(ctx, invoice); err != nil {
		s.logger.Error(ctx, "Failed to store service invoice",
			"number", number,
			"charge_id", charge.ID,
			"error", err,
		)
		return nil, nil, err
	}

	s.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityServiceInvoice,
		EntityID: invoice.ID,
		NewData:  domain.Snapshot(invoice),
	})

	s.logger.Info(ctx, "Service invoice issued",
		"number", number,
		"charge_id", charge.ID,
	)

	return invoice, charge, nil
}

func (s *serviceInvoiceService) ListServiceInvoices(ctx context.Context, tenantID string) ([]domain.ServiceInvoice, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	invoices, err := s.invoices.ListServiceInvoices(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list service invoices",
			"error", err,
		)
		return nil, err
	}
	return invoices, nil
}
