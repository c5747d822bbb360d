// Package billing holds the financial domain services: per-line amounts,
// document totals and VAT aggregation. Everything is decimal arithmetic;
// rounding to two places happens only at display or persistence, never here.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/goitom/finance-api/internal/domain/entity"
)

// LineAmount computes the amount for one invoice line.
// Amount = quantity * unit price, exact (no rounding).
func LineAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Totals holds the three derived document-level figures.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals derives subtotal, tax and total from the line items and a
// tax rate percentage. Subtotal accumulates the unrounded line amounts;
// TaxAmount = subtotal * rate / 100; Total = subtotal + tax.
//
// No bounds checking is done here: non-negativity of quantities and prices
// is a form-input concern, and the calculator stays permissive.
func ComputeTotals(items []entity.InvoiceItem, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	taxAmount := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}
