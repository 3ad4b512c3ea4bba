package service

import (
	"context"
	"sort"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/shopspring/decimal"
)

// InvoiceService serves the "faturas" view. Nothing is stored: groups are
// rebuilt from the tenant's charges on every call.
type InvoiceService interface {
	ListInvoices(ctx context.Context, tenantID string) ([]domain.InvoiceGroup, error)
}

type invoiceService struct {
	customers domain.CustomerRepository
	charges   domain.ChargeRepository
	logger    *logger.Logger
	now       func() time.Time
}

func NewInvoiceService(customers domain.CustomerRepository, charges domain.ChargeRepository, log *logger.Logger) InvoiceService {
	return &invoiceService{
		customers: customers,
		charges:   charges,
		logger:    log,
		now:       time.Now,
	}
}

func (s *invoiceService) ListInvoices(ctx context.Context, tenantID string) ([]domain.InvoiceGroup, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	ctx = logger.WithTenantID(ctx, tenantID)

	charges, err := s.charges.ListCharges(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list charges for invoices",
			"error", err,
		)
		return nil, err
	}
	customers, err := s.customers.ListCustomers(ctx, tenantID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list customers for invoices",
			"error", err,
		)
		return nil, err
	}

	return GroupInvoices(customers, charges, s.now()), nil
}

// GroupInvoices aggregates charges per customer. A pending charge past its
// due date counts as overdue. Customers without charges are left out.
func GroupInvoices(customers []domain.Customer, charges []domain.Charge, now time.Time) []domain.InvoiceGroup {
	byID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	groups := make(map[string]*domain.InvoiceGroup)

	for _, charge := range charges {
		group, ok := groups[charge.CustomerID]
		if !ok {
			customer := byID[charge.CustomerID]
			group = &domain.InvoiceGroup{
				CustomerID:       charge.CustomerID,
				CustomerName:     customer.Name,
				CustomerDocument: charge.CustomerDocument,
				TotalAmount:      decimal.Zero,
				PendingAmount:    decimal.Zero,
				PaidAmount:       decimal.Zero,
			}
			groups[charge.CustomerID] = group
		}

		group.ChargeCount++
		group.TotalAmount = group.TotalAmount.Add(charge.Amount)

		switch charge.Status {
		case domain.ChargeStatusPaid:
			paid := charge.Amount
			if charge.PaidAmount.Valid {
				paid = charge.PaidAmount.Decimal
			}
			group.PaidAmount = group.PaidAmount.Add(paid)
		case domain.ChargeStatusPending, domain.ChargeStatusOverdue:
			group.PendingAmount = group.PendingAmount.Add(charge.Amount)
			if charge.Status == domain.ChargeStatusOverdue || charge.DueDate.Before(today) {
				group.OverdueCount++
			}
		}
	}

	out := make([]domain.InvoiceGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerName != out[j].CustomerName {
			return out[i].CustomerName < out[j].CustomerName
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}
