package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goitom/finance-api/internal/application/auth"
	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ClientUC    *usecase.ClientUseCase
	ProjectUC   *usecase.ProjectUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	VATUC       *usecase.VATUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	FeedbackUC  *usecase.FeedbackUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// VAT
	vat := protected.Group("/vat")
	vatHandler := NewVATHandler(deps.VATUC, deps.PDFUC)
	vat.Get("/summary", vatHandler.Summary)
	vat.Post("/reports", vatHandler.CreateReport)
	vat.Get("/reports", vatHandler.ListReports)
	vat.Get("/reports/:id", vatHandler.GetReport)
	vat.Patch("/reports/:id/status", vatHandler.UpdateReportStatus)
	vat.Delete("/reports/:id", vatHandler.DeleteReport)
	vat.Get("/reports/:id/pdf", vatHandler.DownloadReportPDF)

	// Settings and organization
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.GetSettings)
	settings.Put("/", settingsHandler.UpdateSettings)
	settings.Get("/organization", settingsHandler.GetOrganization)
	settings.Put("/organization", settingsHandler.UpdateOrganization)
	settings.Post("/organization/logo", settingsHandler.UploadLogo)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Overview)

	// Feedback
	feedback := protected.Group("/feedback")
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	feedback.Post("/", feedbackHandler.Submit)
	feedback.Get("/", feedbackHandler.ListMine)
}
