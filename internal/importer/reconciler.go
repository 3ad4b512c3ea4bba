package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

// ErrNoNaturalKey is returned by Target.Lookup when a row carries nothing
// that identifies an existing entity. Such a row can only be created.
var ErrNoNaturalKey = errors.New("row has no natural key")

// Target binds the reconciler to one entity kind.
//
// Lookup returns a nil entity and a nil error when no entity matches the
// row's natural key. Create and Update return the message reported for the
// row.
type Target interface {
	Entity() domain.EntityKind
	Columns() []string
	RequiredColumns() []string
	Sample() []string
	Validate(row *domain.ImportRow)
	Lookup(ctx context.Context, tenantID string, row *domain.ImportRow) (any, error)
	Create(ctx context.Context, tenantID string, row *domain.ImportRow) (string, error)
	Update(ctx context.Context, tenantID string, row *domain.ImportRow, existing any) (string, error)
}

type Option func(*Reconciler)

// WithRowTimeout bounds the storage work of a single row. Zero disables it.
func WithRowTimeout(d time.Duration) Option {
	return func(r *Reconciler) {
		r.rowTimeout = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// Reconciler applies parsed rows to a target one at a time, in input order.
// A row that fails never stops the rows after it.
type Reconciler struct {
	logger     *logger.Logger
	rowTimeout time.Duration
	now        func() time.Time
}

func NewReconciler(log *logger.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reconciler) Reconcile(ctx context.Context, tenantID string, rows []*domain.ImportRow, mode domain.ImportMode, target Target) *domain.ImportReport {
	report := &domain.ImportReport{
		ImportID:  logger.GetImportID(ctx),
		Entity:    target.Entity(),
		Mode:      mode,
		Details:   make([]domain.ImportDetail, 0, len(rows)),
		StartedAt: r.now(),
	}

	for _, row := range rows {
		r.reconcileRow(ctx, tenantID, row, mode, target)
		report.Record(row)

		if row.Outcome == domain.RowOutcomeFailed {
			r.logger.Warn(ctx, "Import row failed",
				"row", row.RowNumber,
				"entity", target.Entity(),
				"message", row.Message,
			)
		}
	}

	report.FinishedAt = r.now()

	r.logger.Info(ctx, "Import reconciled",
		"entity", target.Entity(),
		"mode", mode,
		"total_rows", report.TotalRows,
		"success_count", report.SuccessCount,
		"error_count", report.ErrorCount,
		"skipped_count", report.SkippedCount,
	)

	return report
}

func (r *Reconciler) reconcileRow(ctx context.Context, tenantID string, row *domain.ImportRow, mode domain.ImportMode, target Target) {
	target.Validate(row)
	if !row.Valid() {
		row.Outcome = domain.RowOutcomeSkippedInvalid
		row.Message = strings.Join(row.ValidationErrors, "; ")
		return
	}

	if action, ok := domain.ParseImportMode(row.Fields.Get(ColAction)); ok {
		mode = action
	}

	if r.rowTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.rowTimeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			row.Outcome = domain.RowOutcomeFailed
			row.Message = fmt.Sprintf("internal error: %v", rec)
			r.logger.Error(ctx, "Recovered from panic while importing row",
				"row", row.RowNumber,
				"panic", rec,
			)
		}
	}()

	outcome, message, err := r.apply(ctx, tenantID, row, mode, target)
	if err != nil {
		row.Outcome = domain.RowOutcomeFailed
		row.Message = err.Error()
		return
	}
	row.Outcome = outcome
	row.Message = message
}

func (r *Reconciler) apply(ctx context.Context, tenantID string, row *domain.ImportRow, mode domain.ImportMode, target Target) (domain.RowOutcome, string, error) {
	existing, err := target.Lookup(ctx, tenantID, row)
	keyless := errors.Is(err, ErrNoNaturalKey)
	if err != nil && !keyless {
		return "", "", err
	}

	switch {
	case existing != nil && mode.AllowsUpdate():
		message, err := target.Update(ctx, tenantID, row, existing)
		return domain.RowOutcomeUpdated, message, err
	case existing != nil:
		return "", "", domain.ErrAlreadyExists
	case mode.AllowsCreate():
		message, err := target.Create(ctx, tenantID, row)
		return domain.RowOutcomeCreated, message, err
	case keyless:
		return "", "", err
	default:
		return "", "", domain.ErrNotFoundForUpdate
	}
}
