package handler

import (
	"net/http"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TaxCategoryHandler struct {
	service service.TaxCategoryService
	logger  *logger.Logger
}

func NewTaxCategoryHandler(service service.TaxCategoryService, log *logger.Logger) *TaxCategoryHandler {
	return &TaxCategoryHandler{
		service: service,
		logger:  log,
	}
}

func (h *TaxCategoryHandler) List(c echo.Context) error {
	categories, err := h.service.ListTaxCategories(c.Request().Context(), middleware.TenantID(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list tax categories")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": categories,
		"total": len(categories),
	})
}

type publishTaxCategoryRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	PIS           decimal.Decimal `json:"pis"`
	COFINS        decimal.Decimal `json:"cofins"`
	CSLL          decimal.Decimal `json:"csll"`
	IR            decimal.Decimal `json:"ir"`
	ISS           decimal.Decimal `json:"iss"`
	EffectiveFrom *time.Time      `json:"effective_from"`
}

func (h *TaxCategoryHandler) Publish(c echo.Context) error {
	var req publishTaxCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	category := domain.TaxCategory{
		Code: domain.TaxCategoryCode(req.Code),
		Name: req.Name,
		Rates: domain.TaxRates{
			PIS:    req.PIS,
			COFINS: req.COFINS,
			CSLL:   req.CSLL,
			IR:     req.IR,
			ISS:    req.ISS,
		},
	}
	if req.EffectiveFrom != nil {
		category.EffectiveFrom = *req.EffectiveFrom
	}

	published, err := h.service.PublishTaxCategory(c.Request().Context(), middleware.TenantID(c), category)
	if err != nil {
		return respondError(c, h.logger, err, "failed to publish tax category")
	}

	return c.JSON(http.StatusCreated, published)
}
