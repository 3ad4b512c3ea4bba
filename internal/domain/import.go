package domain

import (
	"strings"
	"time"
)

type EntityKind string

const (
	EntityKindCustomer EntityKind = "customer"
	EntityKindCharge   EntityKind = "charge"
)

type ImportMode string

const (
	ImportModeCreateOnly ImportMode = "create-only"
	ImportModeUpdateOnly ImportMode = "update-only"
	ImportModeUpsert     ImportMode = "upsert"
)

// ParseImportMode accepts the canonical names and the Portuguese aliases used
// by the CSV "acao" column.
func ParseImportMode(raw string) (ImportMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "create-only", "create", "criar":
		return ImportModeCreateOnly, true
	case "update-only", "update", "atualizar":
		return ImportModeUpdateOnly, true
	case "upsert":
		return ImportModeUpsert, true
	default:
		return "", false
	}
}

func (m ImportMode) AllowsCreate() bool {
	return m == ImportModeCreateOnly || m == ImportModeUpsert
}

func (m ImportMode) AllowsUpdate() bool {
	return m == ImportModeUpdateOnly || m == ImportModeUpsert
}

type RowOutcome string

const (
	RowOutcomePending        RowOutcome = ""
	RowOutcomeCreated        RowOutcome = "created"
	RowOutcomeUpdated        RowOutcome = "updated"
	RowOutcomeSkippedInvalid RowOutcome = "skipped-invalid"
	RowOutcomeFailed         RowOutcome = "failed"
)

// Fields keeps the columns of one record in header order. Lookups ignore
// case, accents, spaces and underscores so "tipoTributacao" and
// "tipo_tributacao" address the same column.
type Fields struct {
	names  []string
	values map[string]string
	key    func(string) string
}

var columnSeparators = strings.NewReplacer("_", "", " ", "", "-", "")

// ColumnKey lowercases a column name and drops separators.
func ColumnKey(name string) string {
	return columnSeparators.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// NewFields builds an empty record. key normalizes column names; nil means
// ColumnKey.
func NewFields(key func(string) string) *Fields {
	if key == nil {
		key = ColumnKey
	}
	return &Fields{values: make(map[string]string), key: key}
}

func (f *Fields) Set(name, value string) {
	key := f.key(name)
	if _, exists := f.values[key]; !exists {
		f.names = append(f.names, name)
	}
	f.values[key] = value
}

// Get returns the trimmed value of a column, "" when absent.
func (f *Fields) Get(name string) string {
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.values[f.key(name)])
}

func (f *Fields) Has(name string) bool {
	if f == nil {
		return false
	}
	return f.Get(name) != ""
}

// Names returns the column names in their original order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// ImportRow lives only for the duration of one import run.
type ImportRow struct {
	RowNumber        int
	Fields           *Fields
	ValidationErrors []string
	Outcome          RowOutcome
	Message          string
}

func (r *ImportRow) Valid() bool {
	return len(r.ValidationErrors) == 0
}

func (r *ImportRow) AddError(msg string) {
	r.ValidationErrors = append(r.ValidationErrors, msg)
}

type ImportDetail struct {
	RowNumber int        `json:"row_number"`
	Message   string     `json:"message"`
	Kind      RowOutcome `json:"kind"`
}

type ImportReport struct {
	ImportID     string         `json:"import_id"`
	Entity       EntityKind     `json:"entity"`
	Mode         ImportMode     `json:"mode"`
	TotalRows    int            `json:"total_rows"`
	SuccessCount int            `json:"success_count"`
	CreatedCount int            `json:"created_count"`
	UpdatedCount int            `json:"updated_count"`
	ErrorCount   int            `json:"error_count"`
	SkippedCount int            `json:"skipped_count"`
	Details      []ImportDetail `json:"details"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// Record adds a row whose outcome is final.
func (r *ImportReport) Record(row *ImportRow) {
	r.TotalRows++
	switch row.Outcome {
	case RowOutcomeCreated:
		r.SuccessCount++
		r.CreatedCount++
	case RowOutcomeUpdated:
		r.SuccessCount++
		r.UpdatedCount++
	case RowOutcomeSkippedInvalid:
		r.ErrorCount++
		r.SkippedCount++
	case RowOutcomeFailed:
		r.ErrorCount++
	}

	r.Details = append(r.Details, ImportDetail{
		RowNumber: row.RowNumber,
		Message:   row.Message,
		Kind:      row.Outcome,
	})
}
