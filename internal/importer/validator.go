package importer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/money"
)

// Column names of the customer and charge files.
const (
	ColName        = "nome"
	ColDocument    = "documento"
	ColPersonType  = "tipo"
	ColEmail       = "email"
	ColPhone       = "telefone"
	ColAddress     = "endereco"
	ColCity        = "cidade"
	ColState       = "estado"
	ColZipCode     = "cep"
	ColTaxCategory = "tipoTributacao"
	ColTradeName   = "nomeFantasia"
	ColNotes       = "observacoes"

	ColCustomerDocument = "cliente_documento"
	ColAmount           = "valor"
	ColDueDate          = "data_vencimento"
	ColChargeKind       = "tipo_boleto"
	ColChargeTaxCode    = "tipo_tributacao"
	ColDescription      = "descricao"
	ColReference        = "seu_numero"
	ColAction           = "acao"
)

const (
	DateLayout      = "2006-01-02"
	minCustomerName = 3
)

// ValidateCustomer checks the structure of a customer row and records every
// problem found on it. Nothing here touches storage.
func ValidateCustomer(row *domain.ImportRow) {
	f := row.Fields

	if name := f.Get(ColName); utf8.RuneCountInString(name) < minCustomerName {
		row.AddError(fmt.Sprintf("nome must have at least %d characters", minCustomerName))
	}

	rawDocument := f.Get(ColDocument)
	document := domain.NormalizeDocument(rawDocument)
	var documentType domain.PersonType
	switch {
	case rawDocument == "":
		row.AddError("documento is required")
	default:
		pt, ok := domain.PersonTypeForDocument(document)
		if !ok {
			row.AddError(fmt.Sprintf("documento must have %d (CPF) or %d (CNPJ) digits, got %d",
				domain.CPFLength, domain.CNPJLength, len(document)))
		}
		documentType = pt
	}

	if raw := f.Get(ColPersonType); raw != "" {
		pt := domain.PersonType(strings.ToUpper(raw))
		switch {
		case pt != domain.PersonTypeIndividual && pt != domain.PersonTypeOrganization:
			row.AddError(fmt.Sprintf("tipo must be PF or PJ, got %q", raw))
		case documentType != "" && pt != documentType:
			row.AddError(fmt.Sprintf("tipo %s does not match a %d-digit documento", pt, len(document)))
		}
	}

	if email := f.Get(ColEmail); email != "" && !strings.Contains(email, "@") {
		row.AddError(fmt.Sprintf("email %q is invalid", email))
	}
}

// ValidateCharge checks the structure of a charge row.
func ValidateCharge(row *domain.ImportRow) {
	f := row.Fields

	if f.Get(ColCustomerDocument) == "" {
		row.AddError("cliente_documento is required")
	}

	if raw := f.Get(ColAmount); raw == "" {
		row.AddError("valor is required")
	} else if amount, err := money.Parse(raw); err != nil {
		row.AddError(fmt.Sprintf("valor %q is not a valid amount", raw))
	} else if !money.Round(amount).IsPositive() {
		row.AddError(fmt.Sprintf("valor must be greater than zero, got %s", raw))
	}

	if raw := f.Get(ColDueDate); raw == "" {
		row.AddError("data_vencimento is required")
	} else if _, err := time.Parse(DateLayout, raw); err != nil {
		row.AddError(fmt.Sprintf("data_vencimento %q must be a valid YYYY-MM-DD date", raw))
	}

	if raw := f.Get(ColChargeKind); raw != "" {
		if _, ok := ParseChargeKind(raw); !ok {
			row.AddError(fmt.Sprintf("tipo_boleto must be NORMAL or HIBRIDO, got %q", raw))
		}
	}
}

// ParseChargeKind defaults to NORMAL for an empty value.
func ParseChargeKind(raw string) (domain.ChargeKind, bool) {
	switch domain.ChargeKind(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", domain.ChargeKindNormal:
		return domain.ChargeKindNormal, true
	case domain.ChargeKindHybrid:
		return domain.ChargeKindHybrid, true
	default:
		return "", false
	}
}
