package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// statusFor maps domain errors to HTTP status codes. Anything unknown is an
// internal error and its message is not sent to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTenantRequired),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBatchParse),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrChargeNotFound),
		errors.Is(err, domain.ErrServiceInvoiceNotFound),
		errors.Is(err, domain.ErrUnknownImport):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownTaxCategory),
		errors.Is(err, domain.ErrInvalidTaxCategory),
		errors.Is(err, domain.ErrChargeNotEditable),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, log *logger.Logger, err error, msg string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError || status == http.StatusGatewayTimeout {
		log.Error(c.Request().Context(), msg,
			"error", err,
		)
		return c.JSON(status, map[string]string{
			"error": msg,
		})
	}

	log.Debug(c.Request().Context(), msg,
		"status", status,
		"error", err,
	)
	return c.JSON(status, map[string]string{
		"error": err.Error(),
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

// parseDate accepts an empty value as the zero time.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}
