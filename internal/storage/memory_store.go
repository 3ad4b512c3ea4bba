package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
)

type chargeKey struct {
	tenantID  string
	document  string
	reference string
}

type categoryKey struct {
	tenantID string
	code     domain.TaxCategoryCode
}

// MemoryStore keeps every entity in process memory. Reads hand out copies so
// callers never mutate stored state without going through an update.
type MemoryStore struct {
	customers       map[string]*domain.Customer
	customerDocs    map[string]string
	charges         map[string]*domain.Charge
	chargeRefs      map[chargeKey]string
	chargeSeq       map[string]int64
	categories      map[categoryKey][]domain.TaxCategory
	invoices        map[string]*domain.ServiceInvoice
	invoiceSeq      map[string]int64
	audit           []domain.AuditEntry
	processedEvents map[string]bool
	now             func() time.Time
	mu              sync.RWMutex
}

// NewMemoryStore returns a store seeded with the global default tax
// categories.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		customers:       make(map[string]*domain.Customer),
		customerDocs:    make(map[string]string),
		charges:         make(map[string]*domain.Charge),
		chargeRefs:      make(map[chargeKey]string),
		chargeSeq:       make(map[string]int64),
		categories:      make(map[categoryKey][]domain.TaxCategory),
		invoices:        make(map[string]*domain.ServiceInvoice),
		invoiceSeq:      make(map[string]int64),
		processedEvents: make(map[string]bool),
		now:             time.Now,
	}

	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, c := range domain.DefaultTaxCategories(epoch) {
		key := categoryKey{code: c.Code}
		s.categories[key] = append(s.categories[key], c)
	}

	return s
}

func customerDocKey(tenantID, document string) string {
	return tenantID + "|" + document
}

func (s *MemoryStore) FindCustomerByDocument(ctx context.Context, tenantID, document string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.customerDocs[customerDocKey(tenantID, document)]
	if !exists {
		return nil, domain.ErrCustomerNotFound
	}

	customer := *s.customers[id]
	return &customer, nil
}

func (s *MemoryStore) FindCustomerByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, exists := s.customers[id]
	if !exists || customer.TenantID != tenantID {
		return nil, domain.ErrCustomerNotFound
	}

	c := *customer
	return &c, nil
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := customerDocKey(customer.TenantID, customer.Document)
	if _, exists := s.customerDocs[key]; exists {
		return fmt.Errorf("customer %s: %w", customer.Document, domain.ErrAlreadyExists)
	}

	c := *customer
	s.customers[c.ID] = &c
	s.customerDocs[key] = c.ID

	return nil
}

func (s *MemoryStore) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.customers[customer.ID]
	if !exists || current.TenantID != customer.TenantID {
		return domain.ErrCustomerNotFound
	}

	c := *customer
	delete(s.customerDocs, customerDocKey(current.TenantID, current.Document))
	s.customers[c.ID] = &c
	s.customerDocs[customerDocKey(c.TenantID, c.Document)] = c.ID

	return nil
}

func (s *MemoryStore) ListCustomers(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Customer{}
	for _, c := range s.customers {
		if c.TenantID == tenantID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	return out, nil
}

func (s *MemoryStore) FindChargeByID(ctx context.Context, tenantID, id string) (*domain.Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	charge, exists := s.charges[id]
	if !exists || charge.TenantID != tenantID {
		return nil, domain.ErrChargeNotFound
	}

	return copyCharge(charge), nil
}

func (s *MemoryStore) FindChargeByReference(ctx context.Context, tenantID, customerDocument, externalReference string) (*domain.Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.chargeRefs[chargeKey{tenantID, customerDocument, externalReference}]
	if !exists {
		return nil, domain.ErrChargeNotFound
	}

	return copyCharge(s.charges[id]), nil
}

func (s *MemoryStore) CreateCharge(ctx context.Context, charge *domain.Charge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var key chargeKey
	if charge.ExternalReference != "" {
		key = chargeKey{charge.TenantID, charge.CustomerDocument, charge.ExternalReference}
		if _, exists := s.chargeRefs[key]; exists {
			return fmt.Errorf("charge %s: %w", charge.ExternalReference, domain.ErrAlreadyExists)
		}
	}

	s.charges[charge.ID] = copyCharge(charge)
	if charge.ExternalReference != "" {
		s.chargeRefs[key] = charge.ID
	}

	return nil
}

func (s *MemoryStore) UpdateCharge(ctx context.Context, charge *domain.Charge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.charges[charge.ID]
	if !exists || current.TenantID != charge.TenantID {
		return domain.ErrChargeNotFound
	}

	if current.ExternalReference != "" {
		delete(s.chargeRefs, chargeKey{current.TenantID, current.CustomerDocument, current.ExternalReference})
	}
	s.charges[charge.ID] = copyCharge(charge)
	if charge.ExternalReference != "" {
		s.chargeRefs[chargeKey{charge.TenantID, charge.CustomerDocument, charge.ExternalReference}] = charge.ID
	}

	return nil
}

func (s *MemoryStore) ListCharges(ctx context.Context, tenantID string) ([]domain.Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Charge{}
	for _, c := range s.charges {
		if c.TenantID == tenantID {
			out = append(out, *copyCharge(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OurNumber < out[j].OurNumber
	})

	return out, nil
}

func (s *MemoryStore) NextChargeSequence(ctx context.Context, tenantID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chargeSeq[tenantID]++
	return s.chargeSeq[tenantID], nil
}

func (s *MemoryStore) MarkChargesOverdue(ctx context.Context, dueBefore, updatedAt time.Time) ([]domain.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Charge{}
	for _, c := range s.charges {
		if c.Status != domain.ChargeStatusPending || !c.DueDate.Before(dueBefore) {
			continue
		}
		c.Status = domain.ChargeStatusOverdue
		c.UpdatedAt = updatedAt
		out = append(out, *copyCharge(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TenantID != out[j].TenantID {
			return out[i].TenantID < out[j].TenantID
		}
		return out[i].OurNumber < out[j].OurNumber
	})

	return out, nil
}

func copyCharge(c *domain.Charge) *domain.Charge {
	out := *c
	if c.PaidAt != nil {
		paidAt := *c.PaidAt
		out.PaidAt = &paidAt
	}
	if c.Retention != nil {
		b := *c.Retention
		b.Warnings = append([]string(nil), c.Retention.Warnings...)
		out.Retention = &b
	}
	return &out
}

// GetActiveTaxCategory prefers the tenant's own versions and falls back to
// the global defaults.
func (s *MemoryStore) GetActiveTaxCategory(ctx context.Context, tenantID string, code domain.TaxCategoryCode) (*domain.TaxCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	for _, key := range []categoryKey{{tenantID, code}, {"", code}} {
		if c, ok := activeVersion(s.categories[key], now); ok {
			return &c, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTaxCategory, code)
}

func (s *MemoryStore) ListActiveTaxCategories(ctx context.Context, tenantID string) ([]domain.TaxCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	active := make(map[domain.TaxCategoryCode]domain.TaxCategory)
	for key, versions := range s.categories {
		if key.tenantID != "" {
			continue
		}
		if c, ok := activeVersion(versions, now); ok {
			active[key.code] = c
		}
	}
	for key, versions := range s.categories {
		if key.tenantID != tenantID || tenantID == "" {
			continue
		}
		if c, ok := activeVersion(versions, now); ok {
			active[key.code] = c
		}
	}

	out := make([]domain.TaxCategory, 0, len(active))
	for _, c := range active {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})

	return out, nil
}

func (s *MemoryStore) SaveTaxCategoryVersion(ctx context.Context, category *domain.TaxCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := categoryKey{category.TenantID, category.Code}
	category.Version = len(s.categories[key]) + 1
	if category.TenantID != "" {
		// Tenant versions continue the numbering of the defaults they shadow.
		category.Version += len(s.categories[categoryKey{code: category.Code}])
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = s.now()
	}
	if category.EffectiveFrom.IsZero() {
		category.EffectiveFrom = category.CreatedAt
	}

	s.categories[key] = append(s.categories[key], *category)

	return nil
}

// activeVersion picks the highest version already in effect at now.
func activeVersion(versions []domain.TaxCategory, now time.Time) (domain.TaxCategory, bool) {
	var best domain.TaxCategory
	found := false
	for _, v := range versions {
		if v.EffectiveFrom.After(now) {
			continue
		}
		if !found || v.Version > best.Version {
			best = v
			found = true
		}
	}
	return best, found
}

func (s *MemoryStore) CreateServiceInvoice(ctx context.Context, invoice *domain.ServiceInvoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := *invoice
	s.invoices[inv.ID] = &inv

	return nil
}

func (s *MemoryStore) ListServiceInvoices(ctx context.Context, tenantID string) ([]domain.ServiceInvoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.ServiceInvoice{}
	for _, inv := range s.invoices {
		if inv.TenantID == tenantID {
			out = append(out, *inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})

	return out, nil
}

func (s *MemoryStore) NextServiceInvoiceNumber(ctx context.Context, tenantID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoiceSeq[tenantID]++
	return s.invoiceSeq[tenantID], nil
}

func (s *MemoryStore) AppendAudit(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)

	return nil
}

// ListAudit returns the newest entries first. A non-positive limit returns
// everything.
func (s *MemoryStore) ListAudit(ctx context.Context, tenantID string, limit int) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.AuditEntry{}
	for i := len(s.audit) - 1; i >= 0; i-- {
		if s.audit[i].TenantID != tenantID {
			continue
		}
		out = append(out, s.audit[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
