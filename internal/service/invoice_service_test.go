package service

import (
	"context"
	"testing"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/mocks"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupInvoices(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	customers := []domain.Customer{
		{ID: "c1", Name: "Beto Lima", Document: "12345678909"},
		{ID: "c2", Name: "Ana Souza", Document: "98765432100"},
	}
	amount := decimal.RequireFromString
	charges := []domain.Charge{
		{CustomerID: "c1", CustomerDocument: "12345678909", Amount: amount("100.00"), Status: domain.ChargeStatusPending, DueDate: now.AddDate(0, 0, 5)},
		{CustomerID: "c1", CustomerDocument: "12345678909", Amount: amount("50.50"), Status: domain.ChargeStatusPending, DueDate: now.AddDate(0, 0, -1)},
		{CustomerID: "c1", CustomerDocument: "12345678909", Amount: amount("25.00"), Status: domain.ChargeStatusPaid, DueDate: now.AddDate(0, 0, -10)},
		{CustomerID: "c2", CustomerDocument: "98765432100", Amount: amount("10.00"), Status: domain.ChargeStatusOverdue, DueDate: now},
		{CustomerID: "c2", CustomerDocument: "98765432100", Amount: amount("5.00"), Status: domain.ChargeStatusCancelled, DueDate: now},
		{CustomerID: "c2", CustomerDocument: "98765432100", Amount: amount("7.00"), Status: domain.ChargeStatusWrittenOff, DueDate: now},
		{CustomerID: "c2", CustomerDocument: "98765432100", Amount: amount("20.00"), Status: domain.ChargeStatusPaid, DueDate: now,
			PaidAmount: decimal.NewNullDecimal(amount("19.50"))},
	}

	groups := GroupInvoices(customers, charges, now)

	require.Len(t, groups, 2)

	ana := groups[0]
	assert.Equal(t, "Ana Souza", ana.CustomerName)
	assert.Equal(t, 4, ana.ChargeCount)
	assert.Equal(t, "42.00", ana.TotalAmount.StringFixed(2))
	assert.Equal(t, "10.00", ana.PendingAmount.StringFixed(2))
	assert.Equal(t, "19.50", ana.PaidAmount.StringFixed(2))
	assert.Equal(t, 1, ana.OverdueCount)

	beto := groups[1]
	assert.Equal(t, "Beto Lima", beto.CustomerName)
	assert.Equal(t, 3, beto.ChargeCount)
	assert.Equal(t, "175.50", beto.TotalAmount.StringFixed(2))
	assert.Equal(t, "150.50", beto.PendingAmount.StringFixed(2))
	assert.Equal(t, "25.00", beto.PaidAmount.StringFixed(2))
	assert.Equal(t, 1, beto.OverdueCount)
}

func TestGroupInvoices_NoCharges(t *testing.T) {
	groups := GroupInvoices([]domain.Customer{{ID: "c1"}}, nil, time.Now())

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestListInvoices(t *testing.T) {
	customers := mocks.NewMockCustomerRepository(t)
	charges := mocks.NewMockChargeRepository(t)
	svc := NewInvoiceService(customers, charges, logger.NewNop())

	charges.EXPECT().ListCharges(mock.Anything, tenantID).Return([]domain.Charge{
		{CustomerID: "c1", Amount: decimal.NewFromInt(10), Status: domain.ChargeStatusPaid},
	}, nil).Once()
	customers.EXPECT().ListCustomers(mock.Anything, tenantID).Return([]domain.Customer{{ID: "c1", Name: "Ana"}}, nil).Once()

	groups, err := svc.ListInvoices(context.Background(), tenantID)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Ana", groups[0].CustomerName)
}
