package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/importer"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

type ImportService interface {
	Import(ctx context.Context, tenantID string, kind domain.EntityKind, mode domain.ImportMode, reader io.Reader) (*domain.ImportReport, error)
	Template(ctx context.Context, kind domain.EntityKind) ([]byte, error)
}

type importService struct {
	reconciler *importer.Reconciler
	targets    map[domain.EntityKind]importer.Target
	logger     *logger.Logger
}

func NewImportService(reconciler *importer.Reconciler, log *logger.Logger, targets ...importer.Target) ImportService {
	byKind := make(map[domain.EntityKind]importer.Target, len(targets))
	for _, target := range targets {
		byKind[target.Entity()] = target
	}
	return &importService{
		reconciler: reconciler,
		targets:    byKind,
		logger:     log,
	}
}

// Import parses the whole payload before touching storage. A batch parse
// failure is returned as an error; row failures only show up in the report.
func (s *importService) Import(ctx context.Context, tenantID string, kind domain.EntityKind, mode domain.ImportMode, reader io.Reader) (*domain.ImportReport, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	target, ok := s.targets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownImport, kind)
	}
	parsed, ok := domain.ParseImportMode(string(mode))
	if !ok {
		return nil, fmt.Errorf("%w: mode must be create-only, update-only or upsert, got %q", domain.ErrValidation, mode)
	}
	mode = parsed

	ctx = logger.WithTenantID(ctx, tenantID)
	ctx = logger.WithImportID(ctx, uuid.New().String())

	s.logger.Info(ctx, "Starting import",
		"entity", kind,
		"mode", mode,
	)

	rows, err := importer.Parse(reader, target.RequiredColumns())
	if err != nil {
		s.logger.Warn(ctx, "Import payload rejected",
			"entity", kind,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Import payload parsed",
		"rows", len(rows),
	)

	return s.reconciler.Reconcile(ctx, tenantID, rows, mode, target), nil
}

func (s *importService) Template(ctx context.Context, kind domain.EntityKind) ([]byte, error) {
	target, ok := s.targets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownImport, kind)
	}

	content, err := importer.Template(target)
	if err != nil {
		s.logger.Error(ctx, "Failed to render import template",
			"entity", kind,
			"error", err,
		)
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	return content, nil
}
