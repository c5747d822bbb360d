package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goitom/finance-api/internal/domain/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "€ 0,00"},
		{"5", "€ 5,00"},
		{"19.99", "€ 19,99"},
		{"1234.56", "€ 1.234,56"},
		{"1000000", "€ 1.000.000,00"},
		{"44.985", "€ 44,99"}, // rounded half-up at display time
	}
	for _, c := range cases {
		got := money.Format(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "input %s", c.in)
	}
}

func TestFormatNumber(t *testing.T) {
	got := money.FormatNumber(decimal.RequireFromString("1234.5"))
	assert.Equal(t, "1.234,50", got)
}

func TestFormatNumberNegative(t *testing.T) {
	got := money.FormatNumber(decimal.RequireFromString("-1234.56"))
	assert.Equal(t, "-1.234,56", got)
}

// Amounts beyond float64's integer range must keep every digit.
func TestFormatNumberLargeAmountsExact(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"90071992547409.93", "90.071.992.547.409,93"},
		{"9007199254740993.01", "9.007.199.254.740.993,01"},
		{"12345678901234567890.12", "12.345.678.901.234.567.890,12"},
	}
	for _, c := range cases {
		got := money.FormatNumber(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "input %s", c.in)
	}
}

// Formatting is stable for values exactly representable in two decimals:
// format, re-parse, format again yields the same string.
func TestFormat_Idempotent(t *testing.T) {
	d := decimal.RequireFromString("1234.56")
	first := money.FormatNumber(d)

	reparsed := decimal.RequireFromString("1234.56")
	assert.Equal(t, first, money.FormatNumber(reparsed))
}
