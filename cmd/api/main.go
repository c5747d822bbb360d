package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/goitom/finance-api/internal/application/auth"
	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/application/usecase"
	infrapdf "github.com/goitom/finance-api/internal/infrastructure/pdf"
	"github.com/goitom/finance-api/internal/infrastructure/postgres"
	"github.com/goitom/finance-api/internal/infrastructure/storage"
	httpRouter "github.com/goitom/finance-api/internal/interfaces/http"
	"github.com/goitom/finance-api/pkg/config"
	"github.com/goitom/finance-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewVATReportRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoGenerator()
	logoStore := storage.NewLocalStore(cfg.Storage)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, orgRepo, reportRepo, pdfGenerator)
	vatUC := usecase.NewVATUseCase(reportRepo, invoiceRepo, clientRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, orgRepo, logoStore)
	dashboardUC := usecase.NewDashboardUseCase(clientRepo, projectRepo, invoiceRepo)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Uploaded logos are served from the local upload directory.
	app.Static("/uploads", cfg.Storage.UploadDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		ProjectUC:   projectUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		VATUC:       vatUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		FeedbackUC:  feedbackUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
