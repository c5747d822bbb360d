package billing

import (
	"context"
	"fmt"

	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// PDFUseCase generates downloadable documents for invoices and VAT reports.
// It re-fetches the fully resolved record set before rendering. Missing
// optional data (no organization, no client) is tolerated with fallbacks;
// only a failed generation surfaces an error, and then no file is returned
// at all.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	orgRepo     repository.OrganizationRepository
	reportRepo  repository.VATReportRepository
	generator   DocumentGenerator
}

// NewPDFUseCase wires the use case with all its dependencies.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	orgRepo repository.OrganizationRepository,
	reportRepo repository.VATReportRepository,
	generator DocumentGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		orgRepo:     orgRepo,
		reportRepo:  reportRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF loads the invoice with its items, organization and
// client, and renders the document.
//
// Returns:
//   - (pdfBytes, filename, nil) on success
//   - domain.ErrNotFound  if the invoice does not exist
//   - domain.ErrForbidden if the invoice belongs to another user
func (uc *PDFUseCase) DownloadInvoicePDF(
	ctx context.Context,
	userID, invoiceID string,
	opts StyleOptions,
) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: get invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: get invoice items: %w", err)
	}

	// Organization and client are optional: the renderer substitutes a
	// placeholder issuer and an empty counterparty card.
	org, _ := uc.orgRepo.GetByUser(userID)
	var client *entity.Client
	if inv.ClientID != "" {
		client, _ = uc.clientRepo.GetByID(inv.ClientID)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, org, client, items, opts.Normalize())
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}

	filename = fmt.Sprintf("factuur-%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}

// DownloadVATReportPDF renders a stored report snapshot together with the
// invoices of its period.
func (uc *PDFUseCase) DownloadVATReportPDF(
	ctx context.Context,
	userID, reportID string,
) (pdfBytes []byte, filename string, err error) {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: get vat report: %w", err)
	}
	if report == nil {
		return nil, "", domain.ErrNotFound
	}
	if report.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	invoices, err := uc.invoiceRepo.ListByIssuePeriod(
		userID, report.PeriodStart, report.PeriodEnd,
		[]string{entity.InvoiceStatusSent, entity.InvoiceStatusPaid},
	)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: list period invoices: %w", err)
	}

	org, _ := uc.orgRepo.GetByUser(userID)

	pdfBytes, err = uc.generator.GenerateVATReportPDF(ctx, report, invoices, org)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}

	filename = fmt.Sprintf("btw-rapport-%s-%s.pdf",
		report.PeriodStart.Format(dateLayout), report.PeriodEnd.Format(dateLayout))
	return pdfBytes, filename, nil
}
