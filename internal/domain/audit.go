package domain

import "encoding/json"

const (
	AuditEntityCustomer       = "customer"
	AuditEntityCharge         = "charge"
	AuditEntityServiceInvoice = "service_invoice"
	AuditEntityTaxCategory    = "tax_category"
)

// Snapshot renders v as the generic map stored in an audit entry. Values
// that cannot be encoded produce nil.
func Snapshot(v interface{}) map[string]interface{} {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
