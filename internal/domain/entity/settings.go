package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-user account configuration. One record per user;
// defaults apply until the first explicit save.
type Settings struct {
	ID            string
	UserID        string
	Currency      string          // default "EUR"
	TaxRate       decimal.Decimal // default BTW percentage for new invoices
	InvoicePrefix string
	InvoiceTerms  string
	InvoiceNotes  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
