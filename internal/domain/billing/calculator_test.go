package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/internal/domain/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
)

func item(qty, price string) entity.InvoiceItem {
	q := decimal.RequireFromString(qty)
	p := decimal.RequireFromString(price)
	return entity.InvoiceItem{
		Quantity:  q,
		UnitPrice: p,
		Amount:    billing.LineAmount(q, p),
	}
}

func TestLineAmount_ExactProduct(t *testing.T) {
	got := billing.LineAmount(decimal.RequireFromString("10"), decimal.RequireFromString("50.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("500.00")), "got %s", got)
}

// The amount must stay an exact product: 1 * 5.005 keeps its third decimal,
// rounding is a render-time concern.
func TestLineAmount_NoPrematureRounding(t *testing.T) {
	got := billing.LineAmount(decimal.RequireFromString("1"), decimal.RequireFromString("5.005"))
	assert.True(t, got.Equal(decimal.RequireFromString("5.005")), "got %s", got)
}

func TestComputeTotals_ConsultingScenario(t *testing.T) {
	// One line: 10 x 50.00 at 21% BTW.
	totals := billing.ComputeTotals(
		[]entity.InvoiceItem{item("10", "50.00")},
		decimal.RequireFromString("21"),
	)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("500.00")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("105.00")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("605.00")), "total %s", totals.Total)
}

// Verifies the unrounded intermediate accumulation: 2*19.99 + 1*5.005 = 44.985.
func TestComputeTotals_UnroundedAccumulation(t *testing.T) {
	totals := billing.ComputeTotals(
		[]entity.InvoiceItem{item("2", "19.99"), item("1", "5.005")},
		decimal.Zero,
	)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("44.985")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("44.985")), "total %s", totals.Total)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	for _, rate := range []string{"0", "9", "21", "100"} {
		totals := billing.ComputeTotals(nil, decimal.RequireFromString(rate))
		assert.True(t, totals.Subtotal.IsZero(), "rate %s", rate)
		assert.True(t, totals.TaxAmount.IsZero(), "rate %s", rate)
		assert.True(t, totals.Total.IsZero(), "rate %s", rate)
	}
}

// Total must always equal subtotal + tax, whatever the inputs.
func TestComputeTotals_TotalIsSubtotalPlusTax(t *testing.T) {
	cases := [][]entity.InvoiceItem{
		{item("1", "0.01")},
		{item("3", "33.33"), item("7", "0.07")},
		{item("0.5", "199.99"), item("12", "8.25"), item("1", "5.005")},
	}
	rate := decimal.RequireFromString("21")
	for i, items := range cases {
		totals := billing.ComputeTotals(items, rate)
		require.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)), "case %d", i)
	}
}
