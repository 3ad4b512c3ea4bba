package domain

import "errors"

var (
	ErrTenantRequired = errors.New("tenant is required")
	ErrValidation     = errors.New("validation failed")
	ErrUnknownImport  = errors.New("unknown import kind")

	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnknownTaxCategory = errors.New("unknown tax category")
	ErrInvalidTaxCategory = errors.New("invalid tax category")

	ErrBatchParse     = errors.New("batch parse failure")
	ErrEmptyPayload   = errors.New("empty payload")
	ErrMissingHeader  = errors.New("missing header")
	ErrMissingColumns = errors.New("missing required columns")

	ErrCustomerNotFound       = errors.New("customer not found")
	ErrChargeNotFound         = errors.New("charge not found")
	ErrServiceInvoiceNotFound = errors.New("service invoice not found")
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFoundForUpdate      = errors.New("entity not found for update")
	ErrChargeNotEditable      = errors.New("charge is no longer editable")

	ErrInvalidStatusTransition = errors.New("invalid charge status transition")
)
