package handler

import (
	"net/http"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ServiceInvoiceHandler struct {
	service service.ServiceInvoiceService
	logger  *logger.Logger
}

func NewServiceInvoiceHandler(service service.ServiceInvoiceService, log *logger.Logger) *ServiceInvoiceHandler {
	return &ServiceInvoiceHandler{
		service: service,
		logger:  log,
	}
}

type issueServiceInvoiceRequest struct {
	CustomerID     string          `json:"customer_id"`
	Service        string          `json:"service"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	DueDate        string          `json:"due_date"`
	Kind           string          `json:"kind"`
	ApplyRetention bool            `json:"apply_retention"`
	TaxCategory    string          `json:"tax_category"`
}

func (h *ServiceInvoiceHandler) Issue(c echo.Context) error {
	var req issueServiceInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return badRequest(c, "due_date must be a valid YYYY-MM-DD date")
	}

	invoice, charge, err := h.service.IssueServiceInvoice(c.Request().Context(), middleware.TenantID(c), service.IssueServiceInvoiceInput{
		CustomerID:     req.CustomerID,
		Service:        req.Service,
		GrossAmount:    req.GrossAmount,
		DueDate:        dueDate,
		Kind:           domain.ChargeKind(req.Kind),
		ApplyRetention: req.ApplyRetention,
		TaxCategory:    domain.TaxCategoryCode(req.TaxCategory),
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to issue service invoice")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"service_invoice": invoice,
		"charge":          charge,
	})
}

func (h *ServiceInvoiceHandler) List(c echo.Context) error {
	invoices, err := h.service.ListServiceInvoices(c.Request().Context(), middleware.TenantID(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list service invoices")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": invoices,
		"total": len(invoices),
	})
}
