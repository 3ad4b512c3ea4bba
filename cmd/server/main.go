package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaminoclone/cobranca/internal/boleto"
	"github.com/kaminoclone/cobranca/internal/config"
	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/internal/eventbus"
	"github.com/kaminoclone/cobranca/internal/handler"
	"github.com/kaminoclone/cobranca/internal/importer"
	"github.com/kaminoclone/cobranca/internal/retention"
	"github.com/kaminoclone/cobranca/internal/server"
	"github.com/kaminoclone/cobranca/internal/service"
	"github.com/kaminoclone/cobranca/internal/storage"
	"github.com/kaminoclone/cobranca/internal/storage/postgres"
	"github.com/kaminoclone/cobranca/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	if err := cfg.Validate(); err != nil {
		log.Fatal(ctx, "Invalid configuration",
			"error", err,
		)
	}

	repo, closeRepo := openRepository(ctx, cfg, log)
	defer closeRepo()
	log.Info(ctx, "Repository initialized",
		"driver", cfg.Storage.Driver,
	)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryDelay,
	}
	bus := eventbus.New(log.Named("eventbus"), eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	auditConsumer := eventbus.NewAuditConsumer(repo, log.Named("audit"), cfg.Worker.PoolSize)
	log.Info(ctx, "Audit consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err := bus.Subscribe(eventbus.EventTypeAudit, auditConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	audit := eventbus.NewAuditPublisher(bus, log)
	calculator := retention.NewCalculator(repo)
	issuer := boleto.NewIssuer(repo)
	reconciler := importer.NewReconciler(log.Named("importer"), importer.WithRowTimeout(cfg.Import.RowTimeout))

	importService := service.NewImportService(reconciler, log,
		importer.NewCustomerTarget(repo, repo, audit),
		importer.NewChargeTarget(repo, repo, calculator, issuer, audit),
	)
	chargeService := service.NewChargeService(repo, repo, calculator, issuer, audit, log)
	customerService := service.NewCustomerService(repo, repo, audit, log)
	serviceInvoiceService := service.NewServiceInvoiceService(repo, repo, chargeService, audit, log)
	taxCategoryService := service.NewTaxCategoryService(repo, audit, log)
	invoiceService := service.NewInvoiceService(repo, repo, log)
	auditService := service.NewAuditService(repo, log)
	log.Info(ctx, "Services initialized")

	defaultMode, ok := domain.ParseImportMode(cfg.Import.DefaultMode)
	if !ok {
		log.Warn(ctx, "Invalid default import mode, using upsert",
			"mode", cfg.Import.DefaultMode,
		)
		defaultMode = domain.ImportModeUpsert
	}

	handlers := server.Handlers{
		Health:         handler.NewHealthHandler(cfg.Storage.Driver, bus),
		Import:         handler.NewImportHandler(importService, defaultMode, log),
		Charge:         handler.NewChargeHandler(chargeService, log),
		Customer:       handler.NewCustomerHandler(customerService, log),
		ServiceInvoice: handler.NewServiceInvoiceHandler(serviceInvoiceService, log),
		TaxCategory:    handler.NewTaxCategoryHandler(taxCategoryService, log),
		Invoice:        handler.NewInvoiceHandler(invoiceService, auditService, log),
	}
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, handlers)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweepDone := make(chan struct{})
	if interval := cfg.Charges.OverdueSweepInterval; interval > 0 {
		sweeper := service.NewOverdueSweeper(chargeService, interval, log.Named("overdue"))
		go func() {
			defer close(sweepDone)
			sweeper.Run(sweepCtx)
		}()
	} else {
		close(sweepDone)
	}

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop the overdue sweeper so it publishes no more audit events
	stopSweep()
	<-sweepDone

	// 3. Stop event bus and wait for audit workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}

func openRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.Repository, func()) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return storage.NewMemoryStore(), func() {}
	}

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(cfg.Database.URL); err != nil {
			log.Fatal(ctx, "Failed to run migrations",
				"error", err,
			)
		}
		log.Info(ctx, "Migrations applied")
	}

	pool, err := postgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal(ctx, "Failed to connect to database",
			"error", err,
		)
	}

	return postgres.NewStore(pool), pool.Close
}
