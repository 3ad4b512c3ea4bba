package handler

import (
	"net/http"
	"strconv"

	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

// InvoiceHandler serves the read-only views: faturas and the audit trail.
type InvoiceHandler struct {
	invoices service.InvoiceService
	audit    service.AuditService
	logger   *logger.Logger
}

func NewInvoiceHandler(invoices service.InvoiceService, audit service.AuditService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		audit:    audit,
		logger:   log,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	groups, err := h.invoices.ListInvoices(c.Request().Context(), middleware.TenantID(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list invoices")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": groups,
		"total": len(groups),
	})
}

func (h *InvoiceHandler) ListAudit(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = service.DefaultAuditLimit
	}
	if limit > service.MaxAuditLimit {
		limit = service.MaxAuditLimit
	}

	entries, err := h.audit.ListAudit(c.Request().Context(), middleware.TenantID(c), limit)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list audit entries")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": entries,
		"total": len(entries),
		"limit": limit,
	})
}
