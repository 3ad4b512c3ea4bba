// Package boleto assigns the bank-facing identifiers of a charge: nosso
// número, digitable line, barcode and, for hybrid charges, the PIX txid and
// copy-paste payload. The bank adapters are stubbed, so the line and barcode
// follow the cooperative's layout with placeholder fields.
package boleto

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// DefaultInterestRate is a percentage per day.
	DefaultInterestRate = decimal.RequireFromString("0.033")
	// DefaultFineRate is a percentage applied once after the due date.
	DefaultFineRate = decimal.RequireFromString("2")
)

// Sequencer hands out the per-tenant charge sequence behind nosso número.
type Sequencer interface {
	NextChargeSequence(ctx context.Context, tenantID string) (int64, error)
}

type Issuer struct {
	sequence Sequencer
	now      func() time.Time
	newTxID  func() string
}

type Option func(*Issuer)

func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

func WithTxIDGenerator(gen func() string) Option {
	return func(i *Issuer) {
		i.newTxID = gen
	}
}

func NewIssuer(sequence Sequencer, opts ...Option) *Issuer {
	i := &Issuer{
		sequence: sequence,
		now:      time.Now,
		newTxID:  NewTxID,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue prepares a new charge for persistence. The charge must already carry
// its tenant, kind and collectible amount.
func (i *Issuer) Issue(ctx context.Context, charge *domain.Charge) error {
	seq, err := i.sequence.NextChargeSequence(ctx, charge.TenantID)
	if err != nil {
		return fmt.Errorf("failed to reserve charge sequence: %w", err)
	}

	charge.OurNumber = OurNumber(i.now(), seq)
	if charge.Status == "" {
		charge.Status = domain.ChargeStatusPending
	}
	if charge.InterestRate.IsZero() {
		charge.InterestRate = DefaultInterestRate
	}
	if charge.FineRate.IsZero() {
		charge.FineRate = DefaultFineRate
	}

	i.Refresh(charge)
	return nil
}

// Refresh recomputes the fields derived from amount and kind. It is called
// again whenever an editable charge changes.
func (i *Issuer) Refresh(charge *domain.Charge) {
	cents := money.Cents(charge.Amount)
	charge.DigitableLine = DigitableLine(charge.OurNumber, cents)
	charge.Barcode = Barcode(cents)

	if charge.Kind != domain.ChargeKindHybrid {
		charge.PixTxID = ""
		charge.PixPayload = ""
		return
	}
	if charge.PixTxID == "" {
		charge.PixTxID = i.newTxID()
	}
	charge.PixPayload = PixPayload(charge.OurNumber, cents)
}

// OurNumber is YY + "2" + six digit sequence + "1".
func OurNumber(now time.Time, seq int64) string {
	return fmt.Sprintf("%02d2%06d1", now.Year()%100, seq%1_000_000)
}

func DigitableLine(ourNumber string, cents int64) string {
	prefix := ourNumber
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return fmt.Sprintf("74891.12511 00614.205128 %s.351030 1 %010d", prefix, cents)
}

func Barcode(cents int64) string {
	return fmt.Sprintf("7489188640%010d1125100614205120", cents)
}

func PixPayload(ourNumber string, cents int64) string {
	return fmt.Sprintf("00020126930014br.gov.bcb.pix2571pix.sicredi.com.br/%s520400005303986%010d5802BR", ourNumber, cents)
}

// NewTxID returns a 32 character alphanumeric PIX transaction id.
func NewTxID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
