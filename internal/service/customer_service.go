package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/importer"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

type CreateCustomerInput struct {
	Name        string
	TradeName   string
	Document    string
	PersonType  domain.PersonType
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	TaxCategory domain.TaxCategoryCode
	Notes       string
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, tenantID string, input CreateCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]domain.Customer, error)
}

type customerService struct {
	customers  domain.CustomerRepository
	categories domain.TaxCategoryRepository
	audit      domain.AuditPublisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewCustomerService(
	customers domain.CustomerRepository,
	categories domain.TaxCategoryRepository,
	audit domain.AuditPublisher,
	log *logger.Logger,
) CustomerService {
	return &customerService{
		customers:  customers,
		categories: categories,
		audit:      audit,
		logger:     log,
		now:        time.Now,
	}
}

// CreateCustomer applies the same structural rules as a customer import row.
func (s *customerService) CreateCustomer(ctx context.Context, tenantID string, input CreateCustomerInput) (*domain.Customer, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	row := customerRow(input)
	importer.ValidateCustomer(row)
	if !row.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(row.ValidationErrors, "; "))
	}

	document := domain.NormalizeDocument(input.Document)
	personType, _ := domain.PersonTypeForDocument(document)

	category := domain.TaxCategoryNone
	if input.TaxCategory != "" {
		code := domain.NormalizeTaxCategoryCode(string(input.TaxCategory))
		if _, err := s.categories.GetActiveTaxCategory(ctx, tenantID, code); err != nil {
			return nil, err
		}
		category = code
	}

	_, err := s.customers.FindCustomerByDocument(ctx, tenantID, document)
	if err == nil {
		return nil, fmt.Errorf("customer %s: %w", document, domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	now := s.now()
	customer := &domain.Customer{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		PersonType:  personType,
		Document:    document,
		Name:        strings.TrimSpace(input.Name),
		TradeName:   strings.TrimSpace(input.TradeName),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		Address:     strings.TrimSpace(input.Address),
		City:        strings.TrimSpace(input.City),
		State:       strings.ToUpper(strings.TrimSpace(input.State)),
		ZipCode:     strings.TrimSpace(input.ZipCode),
		TaxCategory: category,
		Status:      domain.CustomerStatusActive,
		Notes:       strings.TrimSpace(input.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.customers.CreateCustomer(ctx, customer); err != nil {
		s.logger.Error(ctx, "Failed to create customer",
			"error", err,
		)
		return nil, err
	}

	s.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityCustomer,
		EntityID: customer.ID,
		NewData:  domain.Snapshot(customer),
	})

	s.logger.Info(ctx, "Customer created",
		"customer_id", customer.ID,
		"person_type", customer.PersonType,
	)

	return customer, nil
}

func customerRow(input CreateCustomerInput) *domain.ImportRow {
	f := domain.NewFields(importer.HeaderKey)
	f.Set(importer.ColName, input.Name)
	f.Set(importer.ColDocument, input.Document)
	f.Set(importer.ColPersonType, string(input.PersonType))
	f.Set(importer.ColEmail, input.Email)
	return &domain.ImportRow{Fields: f}
}

func (s *customerService) ListCustomers(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	customers, err := s.customers.ListCustomers(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list customers",
			"error", err,
		)
		return nil, err
	}
	return customers, nil
}
