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

type ChargeHandler struct {
	service service.ChargeService
	logger  *logger.Logger
}

func NewChargeHandler(service service.ChargeService, log *logger.Logger) *ChargeHandler {
	return &ChargeHandler{
		service: service,
		logger:  log,
	}
}

type issueChargeRequest struct {
	CustomerID        string          `json:"customer_id"`
	CustomerDocument  string          `json:"customer_document"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	DueDate           string          `json:"due_date"`
	Kind              string          `json:"kind"`
	Description       string          `json:"description"`
	ExternalReference string          `json:"external_reference"`
	ApplyRetention    bool            `json:"apply_retention"`
	TaxCategory       string          `json:"tax_category"`
}

func (h *ChargeHandler) Issue(c echo.Context) error {
	var req issueChargeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return badRequest(c, "due_date must be a valid YYYY-MM-DD date")
	}

	charge, err := h.service.IssueCharge(c.Request().Context(), middleware.TenantID(c), service.IssueChargeInput{
		CustomerID:        req.CustomerID,
		CustomerDocument:  req.CustomerDocument,
		GrossAmount:       req.GrossAmount,
		DueDate:           dueDate,
		Kind:              domain.ChargeKind(req.Kind),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		ApplyRetention:    req.ApplyRetention,
		TaxCategory:       domain.TaxCategoryCode(req.TaxCategory),
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to issue charge")
	}

	return c.JSON(http.StatusCreated, charge)
}

func (h *ChargeHandler) List(c echo.Context) error {
	charges, err := h.service.ListCharges(c.Request().Context(), middleware.TenantID(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list charges")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": charges,
		"total": len(charges),
	})
}

func (h *ChargeHandler) Get(c echo.Context) error {
	charge, err := h.service.GetCharge(c.Request().Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get charge")
	}

	return c.JSON(http.StatusOK, charge)
}

type changeStatusRequest struct {
	Action     string          `json:"action"`
	DueDate    string          `json:"due_date"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidAt     string          `json:"paid_at"`
}

// ChangeStatus applies baixar, cancelar, registrar-pagamento or
// alterar-vencimento to one charge.
func (h *ChargeHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	action, err := domain.ParseChargeAction(req.Action)
	if err != nil {
		return badRequest(c, err.Error())
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return badRequest(c, "due_date must be a valid YYYY-MM-DD date")
	}
	paidAt, err := parseDate(req.PaidAt)
	if err != nil {
		return badRequest(c, "paid_at must be a valid YYYY-MM-DD date")
	}

	charge, err := h.service.ChangeStatus(c.Request().Context(), middleware.TenantID(c), c.Param("id"), service.ChangeStatusInput{
		Action:     action,
		DueDate:    dueDate,
		PaidAmount: req.PaidAmount,
		PaidAt:     paidAt,
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to change charge status")
	}

	return c.JSON(http.StatusOK, charge)
}

// Cancel keeps the charge and marks it CANCELADO.
func (h *ChargeHandler) Cancel(c echo.Context) error {
	charge, err := h.service.CancelCharge(c.Request().Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to cancel charge")
	}

	return c.JSON(http.StatusOK, charge)
}

type previewRetentionRequest struct {
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	TaxCategory    string          `json:"tax_category"`
	ApplyRetention bool            `json:"apply_retention"`
}

// PreviewRetention answers {"retention": null} when no retention applies.
func (h *ChargeHandler) PreviewRetention(c echo.Context) error {
	var req previewRetentionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	breakdown, err := h.service.PreviewRetention(
		c.Request().Context(),
		middleware.TenantID(c),
		req.GrossAmount,
		domain.TaxCategoryCode(req.TaxCategory),
		req.ApplyRetention,
	)
	if err != nil {
		return respondError(c, h.logger, err, "failed to preview retention")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"retention": breakdown,
	})
}
