package billing

import (
	"context"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// TxRunner executes a function inside a single database transaction with an
// invoice repository bound to that transaction. Used by the save paths so
// header and items land (or roll back) together.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// Document style variants. They affect table theming only, never section
// ordering.
const (
	StyleModern  = "modern"
	StyleClassic = "classic"
	StyleMinimal = "minimal"
)

// Document color schemes.
const (
	SchemeBlue   = "blue"
	SchemeGreen  = "green"
	SchemePurple = "purple"
	SchemeOrange = "orange"
)

// StyleOptions selects the visual theme of a generated document.
type StyleOptions struct {
	Style  string
	Scheme string
}

// Normalize falls back to the defaults (modern/blue) for unknown values.
func (o StyleOptions) Normalize() StyleOptions {
	switch o.Style {
	case StyleModern, StyleClassic, StyleMinimal:
	default:
		o.Style = StyleModern
	}
	switch o.Scheme {
	case SchemeBlue, SchemeGreen, SchemePurple, SchemeOrange:
	default:
		o.Scheme = SchemeBlue
	}
	return o
}

// DocumentGenerator renders business documents. Organization and client may
// be nil: the renderer substitutes placeholder identity and omits the
// counterparty card fields rather than failing.
type DocumentGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		org *entity.Organization,
		client *entity.Client,
		items []*entity.InvoiceItem,
		opts StyleOptions,
	) ([]byte, error)

	GenerateVATReportPDF(
		ctx context.Context,
		report *entity.VATReport,
		invoices []*entity.Invoice,
		org *entity.Organization,
	) ([]byte, error)
}
