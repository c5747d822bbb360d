package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/application/usecase"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
)

func newVATUseCase() (*usecase.VATUseCase, *memVATReportRepo, *memInvoiceRepo, *memClientRepo) {
	reportRepo := newMemVATReportRepo()
	invoiceRepo := newMemInvoiceRepo()
	clientRepo := newMemClientRepo()
	return usecase.NewVATUseCase(reportRepo, invoiceRepo, clientRepo), reportRepo, invoiceRepo, clientRepo
}

// seedInvoice stores an invoice with precomputed totals. The issue date is
// what places it inside or outside a report period.
func seedInvoice(t *testing.T, repo *memInvoiceRepo, userID, number, status string, issued time.Time, total, vat float64) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		UserID:        userID,
		InvoiceNumber: number,
		IssueDate:     issued,
		DueDate:       issued.AddDate(0, 1, 0),
		Status:        status,
		Subtotal:      decimal.NewFromFloat(total - vat),
		TaxRate:       decimal.NewFromInt(21),
		TaxAmount:     decimal.NewFromFloat(vat),
		Total:         decimal.NewFromFloat(total),
	}
	require.NoError(t, repo.Create(inv))
	return inv
}

// thisMonth returns the first day of the current month, which always falls
// inside both the current-month and year-to-date summary windows.
func thisMonth() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func TestSummaryCountsSentAndPaidOnly(t *testing.T) {
	uc, _, invoiceRepo, _ := newVATUseCase()

	seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusSent, thisMonth(), 121, 21)
	seedInvoice(t, invoiceRepo, "user-1", "INV-002", entity.InvoiceStatusPaid, thisMonth(), 242, 42)
	seedInvoice(t, invoiceRepo, "user-1", "INV-003", entity.InvoiceStatusDraft, thisMonth(), 1000, 173.55)
	seedInvoice(t, invoiceRepo, "user-1", "INV-004", entity.InvoiceStatusCancelled, thisMonth(), 500, 86.78)

	got, err := uc.Summary("user-1")
	require.NoError(t, err)

	assert.True(t, got.CurrentPeriodSales.Equal(decimal.NewFromInt(363)), "sales = %s", got.CurrentPeriodSales)
	assert.True(t, got.CurrentPeriodVAT.Equal(decimal.NewFromInt(63)), "vat = %s", got.CurrentPeriodVAT)
	assert.True(t, got.YTDSales.Equal(decimal.NewFromInt(363)))
	assert.True(t, got.YTDVAT.Equal(decimal.NewFromInt(63)))
}

func TestSummaryExcludesPriorYears(t *testing.T) {
	uc, _, invoiceRepo, _ := newVATUseCase()

	lastYear := thisMonth().AddDate(-1, 0, 0)
	seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusPaid, lastYear, 121, 21)

	got, err := uc.Summary("user-1")
	require.NoError(t, err)

	assert.True(t, got.CurrentPeriodSales.IsZero())
	assert.True(t, got.YTDSales.IsZero())
}

func TestSummaryRequiresUser(t *testing.T) {
	uc, _, _, _ := newVATUseCase()

	_, err := uc.Summary("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateReportAggregatesPeriod(t *testing.T) {
	uc, _, invoiceRepo, _ := newVATUseCase()

	issued := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusSent, issued, 121, 21)
	seedInvoice(t, invoiceRepo, "user-1", "INV-002", entity.InvoiceStatusPaid, issued.AddDate(0, 0, 5), 242, 42)
	// Outside the period, must not count.
	seedInvoice(t, invoiceRepo, "user-1", "INV-003", entity.InvoiceStatusPaid, issued.AddDate(0, 2, 0), 605, 105)

	got, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.VATReportStatusDraft, got.Status)
	assert.Equal(t, "2026-03-01", got.PeriodStart)
	assert.Equal(t, "2026-03-31", got.PeriodEnd)
	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(363)), "sales = %s", got.TotalSales)
	assert.True(t, got.TotalVAT.Equal(decimal.NewFromInt(63)), "vat = %s", got.TotalVAT)
}

func TestCreateReportSnapshotIsFrozen(t *testing.T) {
	uc, _, invoiceRepo, _ := newVATUseCase()

	issued := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusSent, issued, 121, 21)

	report, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	// A later invoice in the same period changes the live list but never
	// the stored totals.
	seedInvoice(t, invoiceRepo, "user-1", "INV-002", entity.InvoiceStatusPaid, issued.AddDate(0, 0, 1), 242, 42)

	detail, err := uc.GetReport("user-1", report.ID)
	require.NoError(t, err)

	assert.True(t, detail.Report.TotalSales.Equal(decimal.NewFromInt(121)), "snapshot sales = %s", detail.Report.TotalSales)
	assert.True(t, detail.Report.TotalVAT.Equal(decimal.NewFromInt(21)))
	assert.Len(t, detail.Invoices, 2)
}

func TestCreateReportValidation(t *testing.T) {
	uc, _, _, _ := newVATUseCase()

	cases := map[string]dto.CreateVATReportRequest{
		"bad start date":   {PeriodStart: "10-03-2026", PeriodEnd: "2026-03-31"},
		"bad end date":     {PeriodStart: "2026-03-01", PeriodEnd: "31-03-2026"},
		"end before start": {PeriodStart: "2026-03-31", PeriodEnd: "2026-03-01"},
		"unknown status":   {PeriodStart: "2026-03-01", PeriodEnd: "2026-03-31", Status: "archived"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.CreateReport("user-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetReportResolvesClientNames(t *testing.T) {
	uc, _, invoiceRepo, clientRepo := newVATUseCase()

	require.NoError(t, clientRepo.Create(&entity.Client{ID: "client-1", UserID: "user-1", Name: "Bakkerij Jansen"}))

	issued := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	inv := seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusSent, issued, 121, 21)
	inv.ClientID = "client-1"
	require.NoError(t, invoiceRepo.Update(inv))

	report, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	detail, err := uc.GetReport("user-1", report.ID)
	require.NoError(t, err)
	require.Len(t, detail.Invoices, 1)
	assert.Equal(t, "Bakkerij Jansen", detail.Invoices[0].ClientName)
}

func TestUpdateReportStatus(t *testing.T) {
	uc, reportRepo, _, _ := newVATUseCase()

	report, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	got, err := uc.UpdateReportStatus("user-1", report.ID, entity.VATReportStatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, entity.VATReportStatusSubmitted, got.Status)

	stored, err := reportRepo.GetByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VATReportStatusSubmitted, stored.Status)

	_, err = uc.UpdateReportStatus("user-1", report.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportOwnership(t *testing.T) {
	uc, _, _, _ := newVATUseCase()

	report, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	_, err = uc.GetReport("user-2", report.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.DeleteReport("user-2", report.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetReport("user-1", uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteReportKeepsInvoices(t *testing.T) {
	uc, reportRepo, invoiceRepo, _ := newVATUseCase()

	issued := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	inv := seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusSent, issued, 121, 21)

	report, err := uc.CreateReport("user-1", dto.CreateVATReportRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteReport("user-1", report.ID))

	gone, err := reportRepo.GetByID(report.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := invoiceRepo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
