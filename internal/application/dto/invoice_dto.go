package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest one line on the invoice form.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaveInvoiceRequest body for POST /api/invoices and PUT /api/invoices/:id.
// Subtotal, tax amount and total are always recomputed server-side from the
// items and tax rate; clients cannot submit them.
type SaveInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"`
	IssueDate     string               `json:"issue_date"` // 2006-01-02
	DueDate       string               `json:"due_date"`   // 2006-01-02
	Status        string               `json:"status,omitempty"`
	TaxRate       decimal.Decimal      `json:"tax_rate"`
	Notes         string               `json:"notes,omitempty"`
	Terms         string               `json:"terms,omitempty"`
	ClientID      string               `json:"client_id,omitempty"`
	ProjectID     string               `json:"project_id,omitempty"`
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemResponse one stored line.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse invoice with items.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Status        string                `json:"status"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxRate       decimal.Decimal       `json:"tax_rate"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	Total         decimal.Decimal       `json:"total"`
	Notes         string                `json:"notes,omitempty"`
	Terms         string                `json:"terms,omitempty"`
	ClientID      string                `json:"client_id,omitempty"`
	ClientName    string                `json:"client_name,omitempty"`
	ProjectID     string                `json:"project_id,omitempty"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
}

// InvoiceListResponse paged invoice listing.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
