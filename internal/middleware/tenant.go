package middleware

import (
	"net/http"
	"strings"

	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

const TenantHeader = "X-Tenant-ID"

// Tenant rejects requests without a tenant header and puts the tenant on the
// request context. The value is only checked for presence.
func Tenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenantID := strings.TrimSpace(c.Request().Header.Get(TenantHeader))
			if tenantID == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": TenantHeader + " header is required",
				})
			}

			ctx := logger.WithTenantID(c.Request().Context(), tenantID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// TenantID reads the tenant stored by Tenant.
func TenantID(c echo.Context) string {
	return logger.GetTenantID(c.Request().Context())
}
