package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PersonType string

const (
	PersonTypeIndividual   PersonType = "PF"
	PersonTypeOrganization PersonType = "PJ"
)

const (
	CPFLength  = 11
	CNPJLength = 14
)

// NormalizeDocument strips everything but digits from a CPF/CNPJ.
func NormalizeDocument(document string) string {
	var b strings.Builder
	b.Grow(len(document))
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PersonTypeForDocument infers PF/PJ from a normalized document length.
func PersonTypeForDocument(document string) (PersonType, bool) {
	switch len(document) {
	case CPFLength:
		return PersonTypeIndividual, true
	case CNPJLength:
		return PersonTypeOrganization, true
	default:
		return "", false
	}
}

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ATIVO"
	CustomerStatusInactive CustomerStatus = "INATIVO"
	CustomerStatusPending  CustomerStatus = "PENDENTE"
)

type Customer struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	PersonType  PersonType      `json:"person_type"`
	Document    string          `json:"document"`
	Name        string          `json:"name"`
	TradeName   string          `json:"trade_name,omitempty"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	TaxCategory TaxCategoryCode `json:"tax_category"`
	Status      CustomerStatus  `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ChargeKind string

const (
	ChargeKindNormal ChargeKind = "NORMAL"
	ChargeKindHybrid ChargeKind = "HIBRIDO"
)

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "PENDENTE"
	ChargeStatusPaid      ChargeStatus = "PAGO"
	ChargeStatusCancelled ChargeStatus = "CANCELADO"
	ChargeStatusOverdue   ChargeStatus = "VENCIDO"

	// ChargeStatusWrittenOff is a charge withdrawn from collection at the bank.
	ChargeStatusWrittenOff ChargeStatus = "BAIXADO"
)

// Charge is a boleto. Amount is what the payer is asked to pay: the net
// amount when a retention breakdown is attached, the gross amount otherwise.
type Charge struct {
	ID                string              `json:"id"`
	TenantID          string              `json:"tenant_id"`
	CustomerID        string              `json:"customer_id"`
	CustomerDocument  string              `json:"customer_document"`
	OurNumber         string              `json:"our_number"`
	ExternalReference string              `json:"external_reference,omitempty"`
	Kind              ChargeKind          `json:"kind"`
	GrossAmount       decimal.Decimal     `json:"gross_amount"`
	Amount            decimal.Decimal     `json:"amount"`
	Retention         *RetentionBreakdown `json:"retention"`
	DueDate           time.Time           `json:"due_date"`
	Description       string              `json:"description,omitempty"`
	Status            ChargeStatus        `json:"status"`
	InterestRate      decimal.Decimal     `json:"interest_rate"`
	FineRate          decimal.Decimal     `json:"fine_rate"`
	DigitableLine     string              `json:"digitable_line"`
	Barcode           string              `json:"barcode"`
	PixTxID           string              `json:"pix_txid,omitempty"`
	PixPayload        string              `json:"pix_payload,omitempty"`
	PaidAmount        decimal.NullDecimal `json:"paid_amount"`
	PaidAt            *time.Time          `json:"paid_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Editable reports whether import or reissue may still change the charge.
func (c *Charge) Editable() bool {
	return c.Status == ChargeStatusPending || c.Status == ChargeStatusOverdue
}

// ChargeAction is a manual lifecycle operation on a single charge.
type ChargeAction string

const (
	ChargeActionWriteOff      ChargeAction = "baixar"
	ChargeActionCancel        ChargeAction = "cancelar"
	ChargeActionPay           ChargeAction = "registrar-pagamento"
	ChargeActionChangeDueDate ChargeAction = "alterar-vencimento"
)

var chargeActionAliases = map[string]ChargeAction{
	"baixar":              ChargeActionWriteOff,
	"baixa":               ChargeActionWriteOff,
	"write-off":           ChargeActionWriteOff,
	"cancelar":            ChargeActionCancel,
	"cancel":              ChargeActionCancel,
	"registrar-pagamento": ChargeActionPay,
	"pagar":               ChargeActionPay,
	"pay":                 ChargeActionPay,
	"alterar-vencimento":  ChargeActionChangeDueDate,
	"change-due-date":     ChargeActionChangeDueDate,
}

func ParseChargeAction(raw string) (ChargeAction, error) {
	action, ok := chargeActionAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: unknown charge action %q", ErrValidation, raw)
	}
	return action, nil
}

// NextStatus returns the status the charge moves to under action. Only
// PENDENTE charges can be written off, a PAGO charge can never be
// cancelled, and payment or a new due date need an editable charge.
func (c *Charge) NextStatus(action ChargeAction) (ChargeStatus, error) {
	switch action {
	case ChargeActionWriteOff:
		if c.Status != ChargeStatusPending {
			return "", fmt.Errorf("%w: only %s charges can be written off, charge is %s",
				ErrInvalidStatusTransition, ChargeStatusPending, c.Status)
		}
		return ChargeStatusWrittenOff, nil
	case ChargeActionCancel:
		if c.Status == ChargeStatusPaid {
			return "", fmt.Errorf("%w: paid charges cannot be cancelled", ErrInvalidStatusTransition)
		}
		return ChargeStatusCancelled, nil
	case ChargeActionPay:
		if !c.Editable() {
			return "", fmt.Errorf("%w: cannot register payment on a %s charge", ErrInvalidStatusTransition, c.Status)
		}
		return ChargeStatusPaid, nil
	case ChargeActionChangeDueDate:
		if !c.Editable() {
			return "", fmt.Errorf("%w: status %s", ErrChargeNotEditable, c.Status)
		}
		return c.Status, nil
	default:
		return "", fmt.Errorf("%w: unknown charge action %q", ErrValidation, action)
	}
}

type ServiceInvoice struct {
	ID          string              `json:"id"`
	TenantID    string              `json:"tenant_id"`
	CustomerID  string              `json:"customer_id"`
	Number      string              `json:"number"`
	Service     string              `json:"service"`
	GrossAmount decimal.Decimal     `json:"gross_amount"`
	Retention   *RetentionBreakdown `json:"retention"`
	NetAmount   decimal.Decimal     `json:"net_amount"`
	ChargeID    string              `json:"charge_id"`
	IssuedAt    time.Time           `json:"issued_at"`
}

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

type AuditEntry struct {
	ID        string                 `json:"id"`
	TenantID  string                 `json:"tenant_id"`
	Action    AuditAction            `json:"action"`
	Entity    string                 `json:"entity"`
	EntityID  string                 `json:"entity_id"`
	OldData   map[string]interface{} `json:"old_data,omitempty"`
	NewData   map[string]interface{} `json:"new_data,omitempty"`
	Import    bool                   `json:"import"`
	CreatedAt time.Time              `json:"created_at"`
}

// InvoiceGroup is the "faturas" view: charges grouped by customer, computed
// on read and never stored.
type InvoiceGroup struct {
	CustomerID       string          `json:"customer_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerDocument string          `json:"customer_document"`
	ChargeCount      int             `json:"charge_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PendingAmount    decimal.Decimal `json:"pending_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	OverdueCount     int             `json:"overdue_count"`
}
