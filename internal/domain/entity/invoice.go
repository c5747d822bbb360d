package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Transitions are free-form: the user may move an invoice
// from any status to any other.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice is the header of an invoice. Subtotal, TaxAmount and Total are
// derived from the line items and tax rate on every save.
type Invoice struct {
	ID            string
	UserID        string
	InvoiceNumber string // unique per user
	IssueDate     time.Time
	DueDate       time.Time
	Status        string
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // percentage, 0..100
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	Terms         string
	ClientID      string // optional
	ProjectID     string // optional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem is one billable line on an invoice. Items are owned entirely
// by the invoice: every save replaces the full set, so item IDs are never
// stable across edits.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal // quantity * unit price, exact
	Position    int             // display order on the invoice
}
