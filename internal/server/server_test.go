package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaminoclone/cobranca/internal/config"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Handlers are left nil: none of these requests reach a handler.
func newTestServer(maxUpload int64) *Server {
	cfg := &config.Config{
		Import: config.ImportConfig{MaxUploadBytes: maxUpload},
	}
	return New(cfg, logger.NewNop(), Handlers{})
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes_TenantHeaderRequired(t *testing.T) {
	s := newTestServer(0)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/customers"},
		{http.MethodPost, "/charges"},
		{http.MethodGet, "/charges/abc"},
		{http.MethodPatch, "/charges/abc"},
		{http.MethodDelete, "/charges/abc"},
		{http.MethodGet, "/invoices"},
		{http.MethodGet, "/audit"},
		{http.MethodPost, "/retention/preview"},
		{http.MethodPost, "/imports/customers"},
		{http.MethodGet, "/imports/templates/clientes"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := serve(s, httptest.NewRequest(p.method, p.path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), middleware.TenantHeader)
			assert.NotEmpty(t, rec.Header().Get(middleware.TraceHeader))
		})
	}
}

func TestRoutes_UnknownRouteIsNotFound(t *testing.T) {
	s := newTestServer(0)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/statements", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UploadLimit(t *testing.T) {
	s := newTestServer(16)

	req := httptest.NewRequest(http.MethodPost, "/imports/charges", strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set(middleware.TenantHeader, "tenant-1")
	req.Header.Set(echo.HeaderContentType, "text/csv")

	rec := serve(s, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCORS_AllowsTenantHeader(t *testing.T) {
	s := newTestServer(0)

	req := httptest.NewRequest(http.MethodOptions, "/charges", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, middleware.TenantHeader)

	rec := serve(s, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), middleware.TenantHeader)
}
