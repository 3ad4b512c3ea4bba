package importer

import (
	"testing"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newRow(values map[string]string) *domain.ImportRow {
	f := domain.NewFields(HeaderKey)
	for k, v := range values {
		f.Set(k, v)
	}
	return &domain.ImportRow{RowNumber: FirstDataRow, Fields: f}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		wantErrs []string
	}{
		{
			name:   "valid CPF",
			values: map[string]string{"nome": "Ana Souza", "documento": "123.456.789-09", "email": "ana@x.com"},
		},
		{
			name:   "valid CNPJ with matching tipo",
			values: map[string]string{"nome": "ACME", "documento": "12.345.678/0001-99", "tipo": "pj"},
		},
		{
			name:     "short name",
			values:   map[string]string{"nome": " Al ", "documento": "12345678909"},
			wantErrs: []string{"nome must have at least 3 characters"},
		},
		{
			name:     "nine digit document",
			values:   map[string]string{"nome": "Ana Souza", "documento": "123456789"},
			wantErrs: []string{"documento must have 11 (CPF) or 14 (CNPJ) digits, got 9"},
		},
		{
			name:     "missing document",
			values:   map[string]string{"nome": "Ana Souza"},
			wantErrs: []string{"documento is required"},
		},
		{
			name:     "tipo does not match document",
			values:   map[string]string{"nome": "Ana Souza", "documento": "12345678909", "tipo": "PJ"},
			wantErrs: []string{"tipo PJ does not match a 11-digit documento"},
		},
		{
			name:     "unknown tipo",
			values:   map[string]string{"nome": "Ana Souza", "documento": "12345678909", "tipo": "XX"},
			wantErrs: []string{`tipo must be PF or PJ, got "XX"`},
		},
		{
			name:   "every problem is reported",
			values: map[string]string{"nome": "A", "documento": "1", "email": "nope"},
			wantErrs: []string{
				"nome must have at least 3 characters",
				"documento must have 11 (CPF) or 14 (CNPJ) digits, got 1",
				`email "nope" is invalid`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow(tt.values)
			ValidateCustomer(row)
			if len(tt.wantErrs) == 0 {
				assert.True(t, row.Valid(), row.ValidationErrors)
				return
			}
			assert.Equal(t, tt.wantErrs, row.ValidationErrors)
		})
	}
}

func TestValidateCharge(t *testing.T) {
	valid := func() map[string]string {
		return map[string]string{
			"cliente_documento": "12345678909",
			"valor":             "100,50",
			"data_vencimento":   "2025-02-28",
			"tipo_boleto":       "hibrido",
		}
	}

	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr string
	}{
		{name: "valid", mutate: func(map[string]string) {}},
		{name: "missing customer", mutate: func(m map[string]string) { delete(m, "cliente_documento") }, wantErr: "cliente_documento is required"},
		{name: "missing amount", mutate: func(m map[string]string) { m["valor"] = "" }, wantErr: "valor is required"},
		{name: "US thousands", mutate: func(m map[string]string) { m["valor"] = "1,500.00" }},
		{name: "ambiguous thousands", mutate: func(m map[string]string) { m["valor"] = "1.500" }, wantErr: `valor "1.500" is not a valid amount`},
		{name: "text amount", mutate: func(m map[string]string) { m["valor"] = "abc" }, wantErr: `valor "abc" is not a valid amount`},
		{name: "NaN amount", mutate: func(m map[string]string) { m["valor"] = "NaN" }, wantErr: `valor "NaN" is not a valid amount`},
		{name: "zero amount", mutate: func(m map[string]string) { m["valor"] = "0" }, wantErr: "valor must be greater than zero, got 0"},
		{name: "sub-cent amount", mutate: func(m map[string]string) { m["valor"] = "0.001" }, wantErr: "valor must be greater than zero, got 0.001"},
		{name: "negative amount", mutate: func(m map[string]string) { m["valor"] = "-5" }, wantErr: "valor must be greater than zero, got -5"},
		{name: "missing due date", mutate: func(m map[string]string) { m["data_vencimento"] = "" }, wantErr: "data_vencimento is required"},
		{name: "impossible date", mutate: func(m map[string]string) { m["data_vencimento"] = "2025-02-30" }, wantErr: `data_vencimento "2025-02-30" must be a valid YYYY-MM-DD date`},
		{name: "wrong date layout", mutate: func(m map[string]string) { m["data_vencimento"] = "28/02/2025" }, wantErr: `data_vencimento "28/02/2025" must be a valid YYYY-MM-DD date`},
		{name: "unknown kind", mutate: func(m map[string]string) { m["tipo_boleto"] = "PIX" }, wantErr: `tipo_boleto must be NORMAL or HIBRIDO, got "PIX"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := valid()
			tt.mutate(values)
			row := newRow(values)

			ValidateCharge(row)

			if tt.wantErr == "" {
				assert.True(t, row.Valid(), row.ValidationErrors)
				return
			}
			assert.Equal(t, []string{tt.wantErr}, row.ValidationErrors)
		})
	}
}

func TestParseChargeKind(t *testing.T) {
	kind, ok := ParseChargeKind("")
	assert.True(t, ok)
	assert.Equal(t, domain.ChargeKindNormal, kind)

	kind, ok = ParseChargeKind(" Hibrido ")
	assert.True(t, ok)
	assert.Equal(t, domain.ChargeKindHybrid, kind)

	_, ok = ParseChargeKind("boleto")
	assert.False(t, ok)
}
