package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-ID"

// maxTraceIDLength bounds caller-supplied ids before they reach the logs.
const maxTraceIDLength = 128

// RequestID propagates X-Trace-ID, falling back to X-Request-ID, and mints a
// uuid when the caller sent neither.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header
			traceID := strings.TrimSpace(header.Get(TraceHeader))
			if traceID == "" {
				traceID = strings.TrimSpace(header.Get(echo.HeaderXRequestID))
			}
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}
