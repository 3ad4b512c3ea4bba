package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaminoclone/cobranca/internal/boleto"
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

type invoiceFixture struct {
	store     *storage.MemoryStore
	customers CustomerService
	svc       ServiceInvoiceService
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	audit := mocks.NewMockAuditPublisher(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Maybe()
	log := logger.NewNop()

	charges := NewChargeService(store, store, retention.NewCalculator(store), boleto.NewIssuer(store), audit, log)
	return &invoiceFixture{
		store:     store,
		customers: NewCustomerService(store, store, audit, log),
		svc:       NewServiceInvoiceService(store, store, charges, audit, log),
	}
}

func (f *invoiceFixture) customer(t *testing.T, document string, category domain.TaxCategoryCode) *domain.Customer {
	t.Helper()
	c, err := f.customers.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{
		Name:        "Cliente " + document,
		Document:    document,
		TaxCategory: category,
	})
	require.NoError(t, err)
	return c
}

func TestIssueServiceInvoice_UsesCustomerCategory(t *testing.T) {
	f := newInvoiceFixture(t)
	customer := f.customer(t, "12345678000199", domain.TaxCategoryPrivateEntity)

	invoice, charge, err := f.svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{
		CustomerID:  customer.ID,
		Service:     "Consultoria",
		GrossAmount: decimal.NewFromInt(1500),
	})

	require.NoError(t, err)
	assert.Equal(t, "000001", invoice.Number)
	assert.Equal(t, charge.ID, invoice.ChargeID)
	require.NotNil(t, invoice.Retention)
	assert.Equal(t, "1407.75", invoice.NetAmount.StringFixed(2))
	assert.Equal(t, "37.50", invoice.Retention.ISS.StringFixed(2))
	assert.Equal(t, invoice.NetAmount, charge.Amount)
	assert.Equal(t, "NFSE-000001", charge.ExternalReference)
	assert.False(t, charge.DueDate.IsZero())

	stored, err := f.store.FindChargeByReference(context.Background(), tenantID, customer.Document, "NFSE-000001")
	require.NoError(t, err)
	assert.Equal(t, charge.ID, stored.ID)
}

func TestIssueServiceInvoice_NoRetentionCustomer(t *testing.T) {
	f := newInvoiceFixture(t)
	customer := f.customer(t, "12345678909", "")

	invoice, charge, err := f.svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{
		CustomerID:  customer.ID,
		Service:     "Manutenção",
		GrossAmount: decimal.NewFromInt(300),
		DueDate:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Nil(t, invoice.Retention)
	assert.Equal(t, "300.00", invoice.NetAmount.StringFixed(2))
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), charge.DueDate)
}

func TestIssueServiceInvoice_NumbersIncrease(t *testing.T) {
	f := newInvoiceFixture(t)
	customer := f.customer(t, "12345678909", "")
	input := IssueServiceInvoiceInput{CustomerID: customer.ID, Service: "Suporte", GrossAmount: decimal.NewFromInt(10)}

	first, _, err := f.svc.IssueServiceInvoice(context.Background(), tenantID, input)
	require.NoError(t, err)
	second, _, err := f.svc.IssueServiceInvoice(context.Background(), tenantID, input)
	require.NoError(t, err)

	assert.Equal(t, "000001", first.Number)
	assert.Equal(t, "000002", second.Number)

	invoices, err := f.svc.ListServiceInvoices(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
}

func TestIssueServiceInvoice_Errors(t *testing.T) {
	f := newInvoiceFixture(t)
	customer := f.customer(t, "12345678909", "")

	_, _, err := f.svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{CustomerID: customer.ID, GrossAmount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = f.svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{CustomerID: "nope", Service: "x", GrossAmount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, _, err = f.svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{CustomerID: customer.ID, Service: "x", TaxCategory: "BOGUS", GrossAmount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrUnknownTaxCategory)

	invoices, err := f.svc.ListServiceInvoices(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestIssueServiceInvoice_NumberAllocationFails(t *testing.T) {
	store := storage.NewMemoryStore()
	audit := mocks.NewMockAuditPublisher(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Maybe()
	invoices := mocks.NewMockServiceInvoiceRepository(t)
	log := logger.NewNop()

	customers := NewCustomerService(store, store, audit, log)
	customer, err := customers.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{
		Name:     "Cliente Teste",
		Document: "12345678909",
	})
	require.NoError(t, err)

	sequenceDown := errors.New("sequence table locked")
	invoices.EXPECT().NextServiceInvoiceNumber(mock.Anything, tenantID).Return(int64(0), sequenceDown)

	charges := NewChargeService(store, store, retention.NewCalculator(store), boleto.NewIssuer(store), audit, log)
	svc := NewServiceInvoiceService(store, invoices, charges, audit, log)

	_, _, err = svc.IssueServiceInvoice(context.Background(), tenantID, IssueServiceInvoiceInput{
		CustomerID:  customer.ID,
		Service:     "Consultoria",
		GrossAmount: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, sequenceDown)
	listed, err := store.ListCharges(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
