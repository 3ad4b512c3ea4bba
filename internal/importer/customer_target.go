package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
)

var customerColumns = []string{
	ColName, ColDocument, ColPersonType, ColEmail, ColPhone,
	ColAddress, ColCity, ColState, ColZipCode, ColTaxCategory,
}

// CustomerTarget imports customers keyed by (tenant, document). Updates only
// overwrite the cells that are filled in.
type CustomerTarget struct {
	customers  domain.CustomerRepository
	categories domain.TaxCategoryRepository
	audit      domain.AuditPublisher
	now        func() time.Time
}

func NewCustomerTarget(customers domain.CustomerRepository, categories domain.TaxCategoryRepository, audit domain.AuditPublisher) *CustomerTarget {
	return &CustomerTarget{
		customers:  customers,
		categories: categories,
		audit:      audit,
		now:        time.Now,
	}
}

func (t *CustomerTarget) Entity() domain.EntityKind {
	return domain.EntityKindCustomer
}

func (t *CustomerTarget) Columns() []string {
	return append([]string(nil), customerColumns...)
}

func (t *CustomerTarget) Sample() []string {
	return []string{
		"Empresa Exemplo Ltda", "12345678000199", "PJ", "financeiro@exemplo.com.br", "11999990000",
		"Rua Exemplo, 100", "São Paulo", "SP", "01001000", string(domain.TaxCategoryPrivateEntity),
	}
}

func (t *CustomerTarget) RequiredColumns() []string {
	return []string{ColName, ColDocument}
}

func (t *CustomerTarget) Validate(row *domain.ImportRow) {
	ValidateCustomer(row)
}

func (t *CustomerTarget) Lookup(ctx context.Context, tenantID string, row *domain.ImportRow) (any, error) {
	document := domain.NormalizeDocument(row.Fields.Get(ColDocument))

	customer, err := t.customers.FindCustomerByDocument(ctx, tenantID, document)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (t *CustomerTarget) Create(ctx context.Context, tenantID string, row *domain.ImportRow) (string, error) {
	f := row.Fields
	document := domain.NormalizeDocument(f.Get(ColDocument))
	personType, _ := domain.PersonTypeForDocument(document)

	category := domain.TaxCategoryNone
	if code := f.Get(ColTaxCategory); code != "" {
		resolved, err := t.resolveCategory(ctx, tenantID, code)
		if err != nil {
			return "", err
		}
		category = resolved
	}

	now := t.now()
	customer := &domain.Customer{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		PersonType:  personType,
		Document:    document,
		Name:        f.Get(ColName),
		TradeName:   f.Get(ColTradeName),
		Email:       f.Get(ColEmail),
		Phone:       f.Get(ColPhone),
		Address:     f.Get(ColAddress),
		City:        f.Get(ColCity),
		State:       strings.ToUpper(f.Get(ColState)),
		ZipCode:     f.Get(ColZipCode),
		TaxCategory: category,
		Status:      domain.CustomerStatusActive,
		Notes:       f.Get(ColNotes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.customers.CreateCustomer(ctx, customer); err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	t.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionCreate,
		Entity:   domain.AuditEntityCustomer,
		EntityID: customer.ID,
		NewData:  domain.Snapshot(customer),
		Import:   true,
	})

	return fmt.Sprintf("customer %s created", document), nil
}

func (t *CustomerTarget) Update(ctx context.Context, tenantID string, row *domain.ImportRow, existing any) (string, error) {
	current, ok := existing.(*domain.Customer)
	if !ok {
		return "", fmt.Errorf("unexpected customer lookup result %T", existing)
	}

	f := row.Fields
	updated := *current

	set := func(dst *string, col string) {
		if v := f.Get(col); v != "" {
			*dst = v
		}
	}
	set(&updated.Name, ColName)
	set(&updated.TradeName, ColTradeName)
	set(&updated.Email, ColEmail)
	set(&updated.Phone, ColPhone)
	set(&updated.Address, ColAddress)
	set(&updated.City, ColCity)
	set(&updated.ZipCode, ColZipCode)
	set(&updated.Notes, ColNotes)
	if v := f.Get(ColState); v != "" {
		updated.State = strings.ToUpper(v)
	}

	if code := f.Get(ColTaxCategory); code != "" {
		resolved, err := t.resolveCategory(ctx, tenantID, code)
		if err != nil {
			return "", err
		}
		updated.TaxCategory = resolved
	}
	updated.UpdatedAt = t.now()

	if err := t.customers.UpdateCustomer(ctx, &updated); err != nil {
		return "", fmt.Errorf("failed to update customer: %w", err)
	}

	t.audit.PublishAudit(ctx, domain.AuditEntry{
		TenantID: tenantID,
		Action:   domain.AuditActionUpdate,
		Entity:   domain.AuditEntityCustomer,
		EntityID: updated.ID,
		OldData:  domain.Snapshot(current),
		NewData:  domain.Snapshot(&updated),
		Import:   true,
	})

	return fmt.Sprintf("customer %s updated", updated.Document), nil
}

func (t *CustomerTarget) resolveCategory(ctx context.Context, tenantID, raw string) (domain.TaxCategoryCode, error) {
	code := domain.NormalizeTaxCategoryCode(raw)
	category, err := t.categories.GetActiveTaxCategory(ctx, tenantID, code)
	if err != nil {
		return "", fmt.Errorf("tipoTributacao %q: %w", raw, err)
	}
	return category.Code, nil
}
