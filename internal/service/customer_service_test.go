package service

import (
	"context"
	"testing"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/storage"
	"github.com/kaminoclone/cobranca/mocks"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) (CustomerService, *storage.MemoryStore, *mocks.MockAuditPublisher) {
	t.Helper()
	store := storage.NewMemoryStore()
	audit := mocks.NewMockAuditPublisher(t)
	return NewCustomerService(store, store, audit, logger.New("info")), store, audit
}

func TestCreateCustomer_Success(t *testing.T) {
	// Setup
	svc, store, audit := newCustomerService(t)
	ctx := context.Background()

	// Mock expectations
	audit.EXPECT().
		PublishAudit(mock.Anything, mock.MatchedBy(func(e domain.AuditEntry) bool {
			return e.Entity == domain.AuditEntityCustomer && e.Action == domain.AuditActionCreate
		})).
		Return().
		Once()

	// Execute
	customer, err := svc.CreateCustomer(ctx, tenantID, CreateCustomerInput{
		Name:        " Comercial Lima Ltda ",
		Document:    "12.345.678/0001-99",
		Email:       "fin@lima.com.br",
		State:       "sp",
		TaxCategory: "pj_privada",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Comercial Lima Ltda", customer.Name)
	assert.Equal(t, "12345678000199", customer.Document)
	assert.Equal(t, domain.PersonTypeOrganization, customer.PersonType)
	assert.Equal(t, domain.TaxCategoryPrivateEntity, customer.TaxCategory)
	assert.Equal(t, "SP", customer.State)
	assert.Equal(t, domain.CustomerStatusActive, customer.Status)

	stored, err := store.FindCustomerByDocument(ctx, tenantID, "12345678000199")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, stored.ID)
}

func TestCreateCustomer_DefaultsToNoRetention(t *testing.T) {
	svc, _, audit := newCustomerService(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Once()

	customer, err := svc.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{
		Name:     "Ana Souza",
		Document: "12345678909",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TaxCategoryNone, customer.TaxCategory)
	assert.Equal(t, domain.PersonTypeIndividual, customer.PersonType)
}

func TestCreateCustomer_Duplicate(t *testing.T) {
	svc, _, audit := newCustomerService(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Once()
	input := CreateCustomerInput{Name: "Ana Souza", Document: "12345678909"}

	_, err := svc.CreateCustomer(context.Background(), tenantID, input)
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), tenantID, input)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateCustomer_SameDocumentOtherTenant(t *testing.T) {
	svc, _, audit := newCustomerService(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Twice()
	input := CreateCustomerInput{Name: "Ana Souza", Document: "12345678909"}

	_, err := svc.CreateCustomer(context.Background(), "tenant-a", input)
	require.NoError(t, err)
	_, err = svc.CreateCustomer(context.Background(), "tenant-b", input)

	assert.NoError(t, err)
}

func TestCreateCustomer_ValidationErrors(t *testing.T) {
	svc, _, _ := newCustomerService(t)

	_, err := svc.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{
		Name:     "Al",
		Document: "123",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "nome must have at least 3 characters")
	assert.Contains(t, err.Error(), "documento must have 11 (CPF) or 14 (CNPJ) digits, got 3")
}

func TestCreateCustomer_UnknownTaxCategory(t *testing.T) {
	svc, _, _ := newCustomerService(t)

	_, err := svc.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{
		Name:        "Ana Souza",
		Document:    "12345678909",
		TaxCategory: "BOGUS",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownTaxCategory)
}

func TestListCustomers(t *testing.T) {
	svc, _, audit := newCustomerService(t)
	audit.EXPECT().PublishAudit(mock.Anything, mock.Anything).Return().Once()

	_, err := svc.CreateCustomer(context.Background(), tenantID, CreateCustomerInput{Name: "Ana Souza", Document: "12345678909"})
	require.NoError(t, err)

	customers, err := svc.ListCustomers(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	others, err := svc.ListCustomers(context.Background(), "tenant-2")
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.ListCustomers(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrTenantRequired)
}
