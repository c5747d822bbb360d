package dto

import "github.com/shopspring/decimal"

// CreateVATReportRequest body for POST /api/vat/reports. Totals are computed
// server-side from the period's invoices at creation time.
type CreateVATReportRequest struct {
	PeriodStart string `json:"period_start"` // 2006-01-02
	PeriodEnd   string `json:"period_end"`   // 2006-01-02
	Status      string `json:"status,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// VATReportResponse a stored report snapshot.
type VATReportResponse struct {
	ID          string          `json:"id"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalVAT    decimal.Decimal `json:"total_vat"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}

// VATReportListResponse paged report listing.
type VATReportListResponse struct {
	Items []VATReportResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// VATReportDetailResponse report plus the invoices of its period, for the
// detail view and the report document.
type VATReportDetailResponse struct {
	Report   VATReportResponse `json:"report"`
	Invoices []InvoiceResponse `json:"invoices"`
}

// VATSummaryResponse live current-period and year-to-date figures, computed
// on demand and never persisted.
type VATSummaryResponse struct {
	CurrentPeriodSales decimal.Decimal `json:"current_period_sales"`
	CurrentPeriodVAT   decimal.Decimal `json:"current_period_vat"`
	YTDSales           decimal.Decimal `json:"ytd_sales"`
	YTDVAT             decimal.Decimal `json:"ytd_vat"`
}
