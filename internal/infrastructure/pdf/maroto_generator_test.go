package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
)

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            "inv-1",
		UserID:        "user-1",
		InvoiceNumber: "INV-2025-001",
		IssueDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:        entity.InvoiceStatusSent,
		Subtotal:      decimal.NewFromInt(500),
		TaxRate:       decimal.NewFromInt(21),
		TaxAmount:     decimal.NewFromInt(105),
		Total:         decimal.NewFromInt(605),
		Notes:         "Graag betalen binnen 30 dagen.",
		Terms:         "Betaling via bankoverschrijving.",
	}
}

func testItems() []*entity.InvoiceItem {
	return []*entity.InvoiceItem{
		{
			ID: "it-1", InvoiceID: "inv-1", Description: "Consultancy maart",
			Quantity:  decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(50),
			Amount:    decimal.NewFromInt(500),
		},
	}
}

func testOrg() *entity.Organization {
	return &entity.Organization{
		Name: "Goitom Finance BV", Address: "Keizersgracht 1", City: "Amsterdam",
		Country: "Nederland", Email: "info@goitom.nl", TaxID: "NL001234567B01",
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := NewMarotoGenerator()

	client := &entity.Client{
		Name: "Acme BV", Address: "Damrak 5", City: "Amsterdam",
		Country: "Nederland", Email: "billing@acme.nl",
	}

	out, err := g.GenerateInvoicePDF(context.Background(), testInvoice(), testOrg(), client, testItems(), billing.StyleOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateInvoicePDFAllVariants(t *testing.T) {
	g := NewMarotoGenerator()
	styles := []string{billing.StyleModern, billing.StyleClassic, billing.StyleMinimal}
	schemes := []string{billing.SchemeBlue, billing.SchemeGreen, billing.SchemePurple, billing.SchemeOrange}

	for _, style := range styles {
		for _, sch := range schemes {
			t.Run(style+"/"+sch, func(t *testing.T) {
				out, err := g.GenerateInvoicePDF(context.Background(), testInvoice(), testOrg(), nil, testItems(),
					billing.StyleOptions{Style: style, Scheme: sch})
				require.NoError(t, err)
				assert.NotEmpty(t, out)
			})
		}
	}
}

func TestGenerateInvoicePDFNilPartiesAndNoItems(t *testing.T) {
	g := NewMarotoGenerator()

	inv := testInvoice()
	inv.Notes = ""
	inv.Terms = ""

	out, err := g.GenerateInvoicePDF(context.Background(), inv, nil, nil, nil, billing.StyleOptions{Style: "nonsense", Scheme: "??"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateInvoicePDFZeroItemsMinimal(t *testing.T) {
	g := NewMarotoGenerator()

	inv := testInvoice()
	inv.Subtotal = decimal.Zero
	inv.TaxAmount = decimal.Zero
	inv.Total = decimal.Zero

	out, err := g.GenerateInvoicePDF(context.Background(), inv, nil, nil, nil,
		billing.StyleOptions{Style: billing.StyleMinimal, Scheme: billing.SchemeOrange})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateVATReportPDF(t *testing.T) {
	g := NewMarotoGenerator()

	report := &entity.VATReport{
		ID:          "rep-1",
		UserID:      "user-1",
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalSales:  decimal.NewFromInt(350),
		TotalVAT:    decimal.RequireFromString("73.5"),
		Status:      entity.VATReportStatusDraft,
		Notes:       "Eerste kwartaal",
	}
	invoices := []*entity.Invoice{testInvoice()}

	out, err := g.GenerateVATReportPDF(context.Background(), report, invoices, testOrg())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateVATReportPDFEmptyPeriod(t *testing.T) {
	g := NewMarotoGenerator()

	report := &entity.VATReport{
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TotalSales:  decimal.Zero,
		TotalVAT:    decimal.Zero,
		Status:      entity.VATReportStatusDraft,
	}

	out, err := g.GenerateVATReportPDF(context.Background(), report, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
