package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/money"
)

var reportStatusDutch = map[string]string{
	entity.VATReportStatusDraft:     "Concept",
	entity.VATReportStatusSubmitted: "Ingediend",
	entity.VATReportStatusApproved:  "Goedgekeurd",
}

// GenerateVATReportPDF renders a report summary: period, the stored totals,
// and the sent and paid invoices of the period. The blue scheme is fixed;
// report documents carry no style options.
func (g *MarotoGenerator) GenerateVATReportPDF(
	_ context.Context,
	report *entity.VATReport,
	invoices []*entity.Invoice,
	org *entity.Organization,
) ([]byte, error) {
	colors := schemes[billing.SchemeBlue]
	m := maroto.New(pageConfig("BTW Rapport"))

	m.AddRows(reportHeaderRows(report, org, colors)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colors.primary, Thickness: 0.8}))
	m.AddRows(row.New(4))
	m.AddRows(reportTotalsRows(report, colors)...)
	m.AddRows(row.New(6))

	m.AddRows(reportTableHeaderRow(colors))
	m.AddRows(reportInvoiceRows(invoices, colors)...)

	if report.Notes != "" {
		m.AddRows(row.New(6))
		m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New("Notities:", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colors.text,
			}))),
			row.New(10).Add(col.New(12).Add(text.New(report.Notes, props.Text{
				Size: 9, Color: colors.text,
			}))),
		)
	}

	m.AddRows(row.New(8))
	m.AddRows(footerRows(org, colors, g.now())...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate vat report: %w", err)
	}
	return doc.GetBytes(), nil
}

// reportHeaderRows: organization left, BTW RAPPORT + period + status right.
func reportHeaderRows(report *entity.VATReport, org *entity.Organization, colors scheme) []core.Row {
	name := fallbackOrgName
	if org != nil && org.Name != "" {
		name = org.Name
	}
	status := reportStatusDutch[report.Status]
	if status == "" {
		status = report.Status
	}
	period := report.PeriodStart.Format(dutchDate) + " t/m " + report.PeriodEnd.Format(dutchDate)

	return []core.Row{
		row.New(18).Add(
			col.New(7).Add(
				text.New(name, props.Text{
					Style: fontstyle.Bold, Size: 17, Color: colors.text, Top: 1,
				}),
				text.New(orgSubtitle, props.Text{
					Size: 8, Top: 10, Color: slate500,
				}),
			),
			col.New(5).Add(
				text.New("BTW RAPPORT", props.Text{
					Style: fontstyle.Bold, Size: 16, Align: align.Right,
					Color: colors.primary, Top: 1,
				}),
				text.New(period, props.Text{
					Size: 9, Align: align.Right, Top: 10, Color: colors.text,
				}),
				text.New("Status: "+status, props.Text{
					Size: 8, Align: align.Right, Top: 15, Color: slate500,
				}),
			),
		),
	}
}

// reportTotalsRows: the snapshot figures, emphasized.
func reportTotalsRows(report *entity.VATReport, colors scheme) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("TOTALEN", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colors.primary, Top: 1,
		}))),
		row.New(14).Add(
			col.New(6).WithStyle(&props.Cell{BackgroundColor: colors.light}).Add(
				text.New("Totale omzet", props.Text{Size: 9, Top: 2, Left: 2, Color: colors.text}),
				text.New(money.Format(report.TotalSales), props.Text{
					Style: fontstyle.Bold, Size: 12, Top: 7, Left: 2, Color: colors.text,
				}),
			),
			col.New(6).WithStyle(&props.Cell{BackgroundColor: colors.light}).Add(
				text.New("Totale BTW", props.Text{Size: 9, Top: 2, Left: 2, Color: colors.text}),
				text.New(money.Format(report.TotalVAT), props.Text{
					Style: fontstyle.Bold, Size: 12, Top: 7, Left: 2, Color: colors.primary,
				}),
			),
		),
	}
}

func reportTableHeaderRow(colors scheme) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: white, Top: 2, Left: 2, Right: 2,
		}))
	}
	return row.New(9).WithStyle(&props.Cell{BackgroundColor: colors.primary}).Add(
		h("Factuurnummer", 3, align.Left),
		h("Datum", 2, align.Left),
		h("Status", 2, align.Left),
		h("Subtotaal", 2, align.Right),
		h("BTW", 1, align.Right),
		h("Totaal", 2, align.Right),
	)
}

func reportInvoiceRows(invoices []*entity.Invoice, colors scheme) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8.5, Align: a, Top: 2, Left: 2, Right: 2, Color: colors.text,
		}))
	}
	rows := make([]core.Row, 0, len(invoices))
	for i, inv := range invoices {
		status := statusDutch[inv.Status]
		if status == "" {
			status = inv.Status
		}
		r := row.New(7).Add(
			cell(inv.InvoiceNumber, 3, align.Left),
			cell(inv.IssueDate.Format(dutchDate), 2, align.Left),
			cell(status, 2, align.Left),
			cell(money.Format(inv.Subtotal), 2, align.Right),
			cell(money.Format(inv.TaxAmount), 1, align.Right),
			cell(money.Format(inv.Total), 2, align.Right),
		)
		if i%2 == 0 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colors.light})
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Geen facturen in deze periode.", props.Text{
				Size: 9, Top: 2, Color: slate500,
			}),
		)))
	}
	return rows
}
