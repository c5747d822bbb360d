// Package money formats amounts for display. The platform is Dutch-market:
// everything renders as EUR with nl-NL grouping and exactly two fraction
// digits.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var dutch = message.NewPrinter(language.MustParse("nl-NL"))

// Format renders an amount as a Dutch euro string, e.g. "€ 1.234,56".
// The amount is rounded half-up to two places first.
func Format(amount decimal.Decimal) string {
	return "€ " + FormatNumber(amount)
}

// FormatNumber renders an amount with nl-NL grouping and two fraction
// digits, without a currency symbol, e.g. "1.234,56". The formatting works
// on the rounded decimal's digits, so it stays exact for every 2-dp value
// the decimal type can hold.
func FormatNumber(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intDigits, frac, _ := strings.Cut(s, ".")

	out := groupThousands(intDigits) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// groupThousands inserts nl-NL thousands separators into a digit string.
// Values fitting an int64 go through the locale printer; longer digit
// strings are grouped directly.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return dutch.Sprint(number.Decimal(n))
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}
