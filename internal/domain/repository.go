package domain

import (
	"context"
	"time"
)

// CustomerRepository lookups return ErrCustomerNotFound when nothing matches,
// so callers can tell "not found" apart from a storage failure.
type CustomerRepository interface {
	FindCustomerByDocument(ctx context.Context, tenantID, document string) (*Customer, error)
	FindCustomerByID(ctx context.Context, tenantID, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, customer *Customer) error
	UpdateCustomer(ctx context.Context, customer *Customer) error
	ListCustomers(ctx context.Context, tenantID string) ([]Customer, error)
}

type ChargeRepository interface {
	FindChargeByID(ctx context.Context, tenantID, id string) (*Charge, error)
	FindChargeByReference(ctx context.Context, tenantID, customerDocument, externalReference string) (*Charge, error)
	CreateCharge(ctx context.Context, charge *Charge) error
	UpdateCharge(ctx context.Context, charge *Charge) error
	ListCharges(ctx context.Context, tenantID string) ([]Charge, error)
	NextChargeSequence(ctx context.Context, tenantID string) (int64, error)
	// MarkChargesOverdue moves every PENDENTE charge of every tenant due
	// before dueBefore to VENCIDO and returns the charges it changed.
	MarkChargesOverdue(ctx context.Context, dueBefore, updatedAt time.Time) ([]Charge, error)
}

type TaxCategoryRepository interface {
	// GetActiveTaxCategory returns the newest version effective now, falling
	// back to the global defaults; ErrUnknownTaxCategory when none exists.
	GetActiveTaxCategory(ctx context.Context, tenantID string, code TaxCategoryCode) (*TaxCategory, error)
	ListActiveTaxCategories(ctx context.Context, tenantID string) ([]TaxCategory, error)
	// SaveTaxCategoryVersion assigns the next version number to category.
	SaveTaxCategoryVersion(ctx context.Context, category *TaxCategory) error
}

type ServiceInvoiceRepository interface {
	CreateServiceInvoice(ctx context.Context, invoice *ServiceInvoice) error
	ListServiceInvoices(ctx context.Context, tenantID string) ([]ServiceInvoice, error)
	NextServiceInvoiceNumber(ctx context.Context, tenantID string) (int64, error)
}

type AuditRepository interface {
	AppendAudit(ctx context.Context, entry AuditEntry) error
	ListAudit(ctx context.Context, tenantID string, limit int) ([]AuditEntry, error)

	// Idempotency tracking for the audit consumer
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

type Repository interface {
	CustomerRepository
	ChargeRepository
	TaxCategoryRepository
	ServiceInvoiceRepository
	AuditRepository
}

// AuditPublisher hands audit entries to an asynchronous sink. It never
// reports failure to the caller.
type AuditPublisher interface {
	PublishAudit(ctx context.Context, entry AuditEntry)
}
