package billing

import (
	"github.com/shopspring/decimal"

	"github.com/goitom/finance-api/internal/domain/entity"
)

// PeriodTotals holds aggregated sales and VAT figures for a set of invoices.
type PeriodTotals struct {
	TotalSales decimal.Decimal
	TotalVAT   decimal.Decimal
}

// Aggregate sums Total and TaxAmount over the supplied invoices. It filters
// nothing itself: the caller supplies a pre-filtered set (status in
// sent/paid, issue date within the period). An empty slice yields zeros.
func Aggregate(invoices []*entity.Invoice) PeriodTotals {
	totals := PeriodTotals{TotalSales: decimal.Zero, TotalVAT: decimal.Zero}
	for _, inv := range invoices {
		totals.TotalSales = totals.TotalSales.Add(inv.Total)
		totals.TotalVAT = totals.TotalVAT.Add(inv.TaxAmount)
	}
	return totals
}
