package handler

import (
	"net/http"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	service service.CustomerService
	logger  *logger.Logger
}

func NewCustomerHandler(service service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  log,
	}
}

type createCustomerRequest struct {
	Name        string `json:"name"`
	TradeName   string `json:"trade_name"`
	Document    string `json:"document"`
	PersonType  string `json:"person_type"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	TaxCategory string `json:"tax_category"`
	Notes       string `json:"notes"`
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	customer, err := h.service.CreateCustomer(c.Request().Context(), middleware.TenantID(c), service.CreateCustomerInput{
		Name:        req.Name,
		TradeName:   req.TradeName,
		Document:    req.Document,
		PersonType:  domain.PersonType(req.PersonType),
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		TaxCategory: domain.TaxCategoryCode(req.TaxCategory),
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to create customer")
	}

	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.ListCustomers(c.Request().Context(), middleware.TenantID(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list customers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": customers,
		"total": len(customers),
	})
}
