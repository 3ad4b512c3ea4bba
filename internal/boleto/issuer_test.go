package boleto

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestOurNumber(t *testing.T) {
	assert.Equal(t, "2520000421", OurNumber(fixedNow, 42))
	assert.Equal(t, "2529999991", OurNumber(fixedNow, 999999))
	assert.Len(t, OurNumber(fixedNow, 1), 10)
}

func TestIssue_NormalCharge(t *testing.T) {
	repo := mocks.NewMockChargeRepository(t)
	issuer := NewIssuer(repo, WithClock(func() time.Time { return fixedNow }))

	repo.EXPECT().
		NextChargeSequence(mock.Anything, "tenant-1").
		Return(int64(7), nil).
		Once()

	charge := &domain.Charge{
		TenantID: "tenant-1",
		Kind:     domain.ChargeKindNormal,
		Amount:   decimal.RequireFromString("1407.75"),
	}

	err := issuer.Issue(context.Background(), charge)

	require.NoError(t, err)
	assert.Equal(t, "2520000071", charge.OurNumber)
	assert.Equal(t, domain.ChargeStatusPending, charge.Status)
	assert.True(t, charge.InterestRate.Equal(DefaultInterestRate))
	assert.True(t, charge.FineRate.Equal(DefaultFineRate))
	assert.Equal(t, "74891.12511 00614.205128 25200.351030 1 0000140775", charge.DigitableLine)
	assert.Equal(t, "748918864000001407751125100614205120", charge.Barcode)
	assert.Empty(t, charge.PixTxID)
	assert.Empty(t, charge.PixPayload)
}

func TestIssue_HybridChargeGetsPix(t *testing.T) {
	repo := mocks.NewMockChargeRepository(t)
	issuer := NewIssuer(repo,
		WithClock(func() time.Time { return fixedNow }),
		WithTxIDGenerator(func() string { return "tx123" }),
	)

	repo.EXPECT().
		NextChargeSequence(mock.Anything, "tenant-1").
		Return(int64(1), nil).
		Once()

	charge := &domain.Charge{
		TenantID: "tenant-1",
		Kind:     domain.ChargeKindHybrid,
		Amount:   decimal.RequireFromString("100.00"),
	}

	require.NoError(t, issuer.Issue(context.Background(), charge))

	assert.Equal(t, "tx123", charge.PixTxID)
	assert.Contains(t, charge.PixPayload, "2520000011")
	assert.Contains(t, charge.PixPayload, "0000010000")
}

func TestIssue_SequenceError(t *testing.T) {
	repo := mocks.NewMockChargeRepository(t)
	issuer := NewIssuer(repo)
	dbErr := errors.New("db down")

	repo.EXPECT().
		NextChargeSequence(mock.Anything, "tenant-1").
		Return(int64(0), dbErr).
		Once()

	err := issuer.Issue(context.Background(), &domain.Charge{TenantID: "tenant-1"})

	assert.ErrorIs(t, err, dbErr)
}

func TestRefresh_DropsPixWhenChargeBecomesNormal(t *testing.T) {
	issuer := NewIssuer(nil)
	charge := &domain.Charge{
		OurNumber:  "2520000011",
		Kind:       domain.ChargeKindNormal,
		Amount:     decimal.RequireFromString("150.00"),
		PixTxID:    "old",
		PixPayload: "old",
	}

	issuer.Refresh(charge)

	assert.Empty(t, charge.PixTxID)
	assert.Empty(t, charge.PixPayload)
	assert.Contains(t, charge.DigitableLine, "0000015000")
}

func TestNewTxID(t *testing.T) {
	id := NewTxID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
}
