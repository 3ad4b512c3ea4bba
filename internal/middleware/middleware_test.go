package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenant(t *testing.T) {
	e := echo.New()
	var seen string
	handler := Tenant()(func(c echo.Context) error {
		seen = TenantID(c)
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		seen = ""
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "X-Tenant-ID header is required")
		assert.Empty(t, seen)
	})

	t.Run("header present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set(TenantHeader, " tenant-1 ")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "tenant-1", seen)
	})
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var traceID string
	handler := RequestID()(func(c echo.Context) error {
		traceID = logger.GetTraceID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Len(t, traceID, 36)
	assert.Equal(t, traceID, rec.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(TraceHeader, "trace-123")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "trace-123", traceID)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-456")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "req-456", traceID)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(TraceHeader, strings.Repeat("x", 500))
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Len(t, traceID, 36)
}

func TestLogging_WritesErrorResponse(t *testing.T) {
	e := echo.New()
	handler := Logging(logger.NewNop())(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such route")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
