package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// vatStatuses are the invoice statuses that count toward VAT figures.
var vatStatuses = []string{entity.InvoiceStatusSent, entity.InvoiceStatusPaid}

// VATUseCase computes VAT figures and manages report snapshots.
type VATUseCase struct {
	reportRepo  repository.VATReportRepository
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time
}

func NewVATUseCase(reportRepo repository.VATReportRepository, invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *VATUseCase {
	return &VATUseCase{
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

// Summary returns live current-month and year-to-date figures. Nothing is
// persisted; the numbers change as invoices change.
func (uc *VATUseCase) Summary(userID string) (*dto.VATSummaryResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	month, err := uc.periodTotals(userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	year, err := uc.periodTotals(userID, yearStart, now)
	if err != nil {
		return nil, err
	}
	return &dto.VATSummaryResponse{
		CurrentPeriodSales: month.TotalSales,
		CurrentPeriodVAT:   month.TotalVAT,
		YTDSales:           year.TotalSales,
		YTDVAT:             year.TotalVAT,
	}, nil
}

// CreateReport aggregates the period's sent and paid invoices and stores the
// result as a snapshot. The totals are frozen at this point.
func (uc *VATUseCase) CreateReport(userID string, in dto.CreateVATReportRequest) (*dto.VATReportResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	start, err := time.Parse(dateLayout, in.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: period start: %v", domain.ErrInvalidInput, err)
	}
	end, err := time.Parse(dateLayout, in.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: period end: %v", domain.ErrInvalidInput, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: period end before period start", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.VATReportStatusDraft
	}
	if !validReportStatus(status) {
		return nil, fmt.Errorf("%w: unknown report status %q", domain.ErrInvalidInput, status)
	}

	totals, err := uc.periodTotals(userID, start, end)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	report := &entity.VATReport{
		ID:          uuid.New().String(),
		UserID:      userID,
		PeriodStart: start,
		PeriodEnd:   end,
		TotalSales:  totals.TotalSales,
		TotalVAT:    totals.TotalVAT,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return toVATReportResponse(report), nil
}

// ListReports returns the user's reports with pagination.
func (uc *VATUseCase) ListReports(userID string, limit, offset int) (*dto.VATReportListResponse, error) {
	reports, err := uc.reportRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VATReportResponse, 0, len(reports))
	for _, r := range reports {
		items = append(items, *toVATReportResponse(r))
	}
	return &dto.VATReportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetReport returns the report together with the sent and paid invoices of
// its period as they are today. The report totals stay the stored snapshot
// even when the invoice list has since changed.
func (uc *VATUseCase) GetReport(userID, reportID string) (*dto.VATReportDetailResponse, error) {
	report, err := uc.ownedReport(userID, reportID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByIssuePeriod(userID, report.PeriodStart, report.PeriodEnd, vatStatuses)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, *uc.toInvoiceRow(inv))
	}
	return &dto.VATReportDetailResponse{
		Report:   *toVATReportResponse(report),
		Invoices: rows,
	}, nil
}

// UpdateReportStatus moves the report through draft, submitted, approved.
func (uc *VATUseCase) UpdateReportStatus(userID, reportID, status string) (*dto.VATReportResponse, error) {
	report, err := uc.ownedReport(userID, reportID)
	if err != nil {
		return nil, err
	}
	if !validReportStatus(status) {
		return nil, fmt.Errorf("%w: unknown report status %q", domain.ErrInvalidInput, status)
	}
	if err := uc.reportRepo.UpdateStatus(reportID, status); err != nil {
		return nil, err
	}
	report.Status = status
	return toVATReportResponse(report), nil
}

// DeleteReport removes the snapshot. Invoices are untouched.
func (uc *VATUseCase) DeleteReport(userID, reportID string) error {
	if _, err := uc.ownedReport(userID, reportID); err != nil {
		return err
	}
	return uc.reportRepo.Delete(reportID)
}

func (uc *VATUseCase) periodTotals(userID string, start, end time.Time) (billing.PeriodTotals, error) {
	invoices, err := uc.invoiceRepo.ListByIssuePeriod(userID, start, end, vatStatuses)
	if err != nil {
		return billing.PeriodTotals{}, err
	}
	return billing.Aggregate(invoices), nil
}

func (uc *VATUseCase) ownedReport(userID, reportID string) (*entity.VATReport, error) {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	if report.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return report, nil
}

// toInvoiceRow maps an invoice to a listing row without its items. The
// client name is resolved best-effort.
func (uc *VATUseCase) toInvoiceRow(inv *entity.Invoice) *dto.InvoiceResponse {
	row := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
	}
	if inv.ClientID != "" {
		if client, err := uc.clientRepo.GetByID(inv.ClientID); err == nil && client != nil {
			row.ClientName = client.Name
		}
	}
	return row
}

func validReportStatus(status string) bool {
	switch status {
	case entity.VATReportStatusDraft, entity.VATReportStatusSubmitted, entity.VATReportStatusApproved:
		return true
	}
	return false
}

func toVATReportResponse(r *entity.VATReport) *dto.VATReportResponse {
	return &dto.VATReportResponse{
		ID:          r.ID,
		PeriodStart: r.PeriodStart.Format(dateLayout),
		PeriodEnd:   r.PeriodEnd.Format(dateLayout),
		TotalSales:  r.TotalSales,
		TotalVAT:    r.TotalVAT,
		Status:      r.Status,
		Notes:       r.Notes,
	}
}
