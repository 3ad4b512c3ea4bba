package server

import (
	"context"
	"fmt"

	"github.com/kaminoclone/cobranca/internal/config"
	"github.com/kaminoclone/cobranca/internal/handler"
	"github.com/kaminoclone/cobranca/internal/middleware"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Health         *handler.HealthHandler
	Import         *handler.ImportHandler
	Charge         *handler.ChargeHandler
	Customer       *handler.CustomerHandler
	ServiceInvoice *handler.ServiceInvoiceHandler
	TaxCategory    *handler.TaxCategoryHandler
	Invoice        *handler.InvoiceHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	handlers Handlers
}

func New(cfg *config.Config, log *logger.Logger, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		handlers: handlers,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			middleware.TenantHeader,
			middleware.TraceHeader,
		},
		ExposeHeaders: []string{middleware.TraceHeader, echo.HeaderContentDisposition},
	}))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	h := s.handlers

	s.echo.GET("/health", h.Health.Check)

	tenant := middleware.Tenant()

	imports := s.echo.Group("/imports", tenant)
	var upload []echo.MiddlewareFunc
	if s.cfg.Import.MaxUploadBytes > 0 {
		upload = append(upload, echoMiddleware.BodyLimit(fmt.Sprintf("%dB", s.cfg.Import.MaxUploadBytes)))
	}
	imports.POST("/customers", h.Import.ImportCustomers, upload...)
	imports.POST("/charges", h.Import.ImportCharges, upload...)
	imports.GET("/templates/:kind", h.Import.Template)

	s.echo.POST("/retention/preview", h.Charge.PreviewRetention, tenant)

	s.echo.GET("/tax-categories", h.TaxCategory.List, tenant)
	s.echo.POST("/tax-categories", h.TaxCategory.Publish, tenant)

	s.echo.GET("/customers", h.Customer.List, tenant)
	s.echo.POST("/customers", h.Customer.Create, tenant)

	s.echo.GET("/charges", h.Charge.List, tenant)
	s.echo.POST("/charges", h.Charge.Issue, tenant)
	s.echo.GET("/charges/:id", h.Charge.Get, tenant)
	s.echo.PATCH("/charges/:id", h.Charge.ChangeStatus, tenant)
	s.echo.DELETE("/charges/:id", h.Charge.Cancel, tenant)

	s.echo.GET("/service-invoices", h.ServiceInvoice.List, tenant)
	s.echo.POST("/service-invoices", h.ServiceInvoice.Issue, tenant)

	s.echo.GET("/invoices", h.Invoice.ListInvoices, tenant)
	s.echo.GET("/audit", h.Invoice.ListAudit, tenant)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
