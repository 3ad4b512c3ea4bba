package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ImportHandler struct {
	service     service.ImportService
	defaultMode domain.ImportMode
	logger      *logger.Logger
}

func NewImportHandler(service service.ImportService, defaultMode domain.ImportMode, log *logger.Logger) *ImportHandler {
	if defaultMode == "" {
		defaultMode = domain.ImportModeUpsert
	}
	return &ImportHandler{
		service:     service,
		defaultMode: defaultMode,
		logger:      log,
	}
}

func (h *ImportHandler) ImportCustomers(c echo.Context) error {
	return h.handleImport(c, domain.EntityKindCustomer)
}

func (h *ImportHandler) ImportCharges(c echo.Context) error {
	return h.handleImport(c, domain.EntityKindCharge)
}

func (h *ImportHandler) handleImport(c echo.Context, kind domain.EntityKind) error {
	ctx := c.Request().Context()

	mode := h.defaultMode
	if raw := c.QueryParam("mode"); raw != "" {
		parsed, ok := domain.ParseImportMode(raw)
		if !ok {
			return badRequest(c, "mode must be create-only, update-only or upsert")
		}
		mode = parsed
	}

	h.logger.Info(ctx, "Handling import request",
		"entity", kind,
		"mode", mode,
	)

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return badRequest(c, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	report, err := h.service.Import(ctx, middleware.TenantID(c), kind, mode, src)
	if err != nil {
		return respondError(c, h.logger, err, "failed to import file")
	}

	h.logger.Info(ctx, "Import finished",
		"import_id", report.ImportID,
		"success_count", report.SuccessCount,
		"error_count", report.ErrorCount,
	)

	return c.JSON(http.StatusOK, report)
}

var templateKinds = map[string]domain.EntityKind{
	"customers": domain.EntityKindCustomer,
	"clientes":  domain.EntityKindCustomer,
	"charges":   domain.EntityKindCharge,
	"boletos":   domain.EntityKindCharge,
}

func (h *ImportHandler) Template(c echo.Context) error {
	name := strings.ToLower(c.Param("kind"))
	kind, ok := templateKinds[name]
	if !ok {
		kind = domain.EntityKind(name)
	}

	content, err := h.service.Template(c.Request().Context(), kind)
	if err != nil {
		return respondError(c, h.logger, err, "failed to render template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=modelo_%s.csv", name))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", content)
}
