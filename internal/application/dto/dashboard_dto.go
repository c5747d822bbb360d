package dto

import "github.com/shopspring/decimal"

// DashboardResponse headline figures plus the most recent invoices.
type DashboardResponse struct {
	ClientCount    int               `json:"client_count"`
	ProjectCount   int               `json:"project_count"`
	InvoiceCount   int               `json:"invoice_count"`
	TotalRevenue   decimal.Decimal   `json:"total_revenue"`
	RecentInvoices []InvoiceResponse `json:"recent_invoices"`
}
