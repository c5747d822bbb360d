package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VAT report statuses.
const (
	VATReportStatusDraft     = "draft"
	VATReportStatusSubmitted = "submitted"
	VATReportStatusApproved  = "approved"
)

// VATReport is a snapshot of sales and VAT over a period, computed once at
// creation time from invoices with status sent or paid. It is never
// recalculated, even if the underlying invoices change. Overlapping periods
// are allowed.
type VATReport struct {
	ID          string
	UserID      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalSales  decimal.Decimal
	TotalVAT    decimal.Decimal
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
