// Package pdf renders invoices and VAT reports with Maroto v2.
//
// A4 page layout of an invoice:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organisatie + subtitel  │  FACTUUR + nr + status    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BEDRIJFSGEGEVENS │ FACTUUR AAN │ FACTUURGEGEVENS            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABEL: Omschrijving | Aantal | Prijs per Stuk | Bedrag      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALEN: Subtotaal / BTW / TOTAAL                           │
//	│  Notities / Algemene Voorwaarden                             │
//	│  FOOTER: org + "Bedankt voor je vertrouwen!" + timestamp     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	coreentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/money"
)

const (
	fallbackOrgName = "GOITOM FINANCE"
	orgSubtitle     = "Professionele Financiële Diensten"
	dutchDate       = "02-01-2006"
)

// ── Color schemes ─────────────────────────────────────────────────────────────

// scheme is a fixed five-color palette.
type scheme struct {
	primary   *props.Color
	secondary *props.Color
	accent    *props.Color
	text      *props.Color
	light     *props.Color
}

var (
	slate900 = &props.Color{Red: 15, Green: 23, Blue: 42}
	slate500 = &props.Color{Red: 100, Green: 116, Blue: 139}
	white    = &props.Color{Red: 255, Green: 255, Blue: 255}

	schemes = map[string]scheme{
		billing.SchemeBlue: {
			primary:   &props.Color{Red: 59, Green: 130, Blue: 246},
			secondary: &props.Color{Red: 37, Green: 99, Blue: 235},
			accent:    &props.Color{Red: 147, Green: 197, Blue: 253},
			text:      slate900,
			light:     &props.Color{Red: 248, Green: 250, Blue: 252},
		},
		billing.SchemeGreen: {
			primary:   &props.Color{Red: 34, Green: 197, Blue: 94},
			secondary: &props.Color{Red: 22, Green: 163, Blue: 74},
			accent:    &props.Color{Red: 134, Green: 239, Blue: 172},
			text:      slate900,
			light:     &props.Color{Red: 240, Green: 253, Blue: 244},
		},
		billing.SchemePurple: {
			primary:   &props.Color{Red: 168, Green: 85, Blue: 247},
			secondary: &props.Color{Red: 147, Green: 51, Blue: 234},
			accent:    &props.Color{Red: 196, Green: 181, Blue: 253},
			text:      slate900,
			light:     &props.Color{Red: 250, Green: 245, Blue: 255},
		},
		billing.SchemeOrange: {
			primary:   &props.Color{Red: 249, Green: 115, Blue: 22},
			secondary: &props.Color{Red: 234, Green: 88, Blue: 12},
			accent:    &props.Color{Red: 253, Green: 186, Blue: 116},
			text:      slate900,
			light:     &props.Color{Red: 255, Green: 247, Blue: 237},
		},
	}

	statusDutch = map[string]string{
		entity.InvoiceStatusDraft:     "Concept",
		entity.InvoiceStatusSent:      "Verzonden",
		entity.InvoiceStatusPaid:      "Betaald",
		entity.InvoiceStatusOverdue:   "Achterstallig",
		entity.InvoiceStatusCancelled: "Geannuleerd",
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.DocumentGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implements billing.DocumentGenerator using Maroto v2.
type MarotoGenerator struct {
	now func() time.Time
}

// NewMarotoGenerator builds the generator.
func NewMarotoGenerator() *MarotoGenerator {
	return &MarotoGenerator{now: time.Now}
}

// GenerateInvoicePDF renders the invoice and returns its bytes. Organization
// and client may be nil. The style selects the table theme only: modern and
// classic get a bordered grid, minimal gets plain rows. When the grid table
// fails to render, the plain table is tried before giving up.
func (g *MarotoGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	org *entity.Organization,
	client *entity.Client,
	items []*entity.InvoiceItem,
	opts billing.StyleOptions,
) ([]byte, error) {
	opts = opts.Normalize()
	colors := schemes[opts.Scheme]
	grid := opts.Style != billing.StyleMinimal

	doc, err := g.buildInvoice(invoice, org, client, items, colors, grid)
	if err != nil && grid {
		doc, err = g.buildInvoice(invoice, org, client, items, colors, false)
	}
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc, nil
}

func (g *MarotoGenerator) buildInvoice(
	invoice *entity.Invoice,
	org *entity.Organization,
	client *entity.Client,
	items []*entity.InvoiceItem,
	colors scheme,
	grid bool,
) ([]byte, error) {
	m := maroto.New(pageConfig("Factuur " + invoice.InvoiceNumber))

	m.AddRows(invoiceHeaderRows(invoice, org, colors)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colors.primary, Thickness: 0.8}))
	m.AddRows(row.New(4))
	m.AddRows(orgCardRows(org, colors)...)
	m.AddRows(row.New(4))
	m.AddRows(partyRows(invoice, client, colors)...)
	m.AddRows(row.New(6))

	m.AddRows(itemTableHeaderRow(colors, grid))
	m.AddRows(itemRows(items, colors, grid)...)

	m.AddRows(row.New(6))
	m.AddRows(totalsRows(invoice, colors)...)

	if invoice.Notes != "" || invoice.Terms != "" {
		m.AddRows(row.New(6))
		m.AddRows(notesRows(invoice, colors)...)
	}

	m.AddRows(row.New(8))
	m.AddRows(footerRows(org, colors, g.now())...)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func pageConfig(title string) *coreentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
}

// ── Invoice sections ──────────────────────────────────────────────────────────

// invoiceHeaderRows: organization identity left, FACTUUR + number + status
// badge right.
func invoiceHeaderRows(invoice *entity.Invoice, org *entity.Organization, colors scheme) []core.Row {
	name := fallbackOrgName
	if org != nil && org.Name != "" {
		name = org.Name
	}
	status := statusDutch[invoice.Status]
	if status == "" {
		status = invoice.Status
	}

	return []core.Row{
		row.New(16).Add(
			col.New(7).Add(
				text.New(name, props.Text{
					Style: fontstyle.Bold, Size: 17, Color: colors.text, Top: 1,
				}),
				text.New(orgSubtitle, props.Text{
					Size: 8, Top: 10, Color: slate500,
				}),
			),
			col.New(5).Add(
				text.New("FACTUUR", props.Text{
					Style: fontstyle.Bold, Size: 18, Align: align.Right,
					Color: colors.primary, Top: 1,
				}),
				text.New("#"+invoice.InvoiceNumber, props.Text{
					Size: 10, Align: align.Right, Top: 11, Color: colors.text,
				}),
			),
		),
		row.New(7).Add(
			col.New(9),
			col.New(3).WithStyle(&props.Cell{BackgroundColor: colors.primary}).Add(
				text.New(strings.ToUpper(status), props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center,
					Color: white, Top: 2,
				}),
			),
		),
		row.New(3),
	}
}

// orgCardRows: BEDRIJFSGEGEVENS block, empty fields omitted.
func orgCardRows(org *entity.Organization, colors scheme) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("BEDRIJFSGEGEVENS", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colors.primary, Top: 1,
			}),
		)),
	}
	if org == nil {
		return append(rows, detailRow(fallbackOrgName, colors.text, true))
	}
	if org.Name != "" {
		rows = append(rows, detailRow(org.Name, colors.text, true))
	}
	if org.Address != "" {
		rows = append(rows, detailRow(org.Address, colors.text, false))
	}
	if org.City != "" {
		rows = append(rows, detailRow(org.City, colors.text, false))
	}
	if org.Country != "" {
		rows = append(rows, detailRow(org.Country, colors.text, false))
	}
	if org.Phone != "" {
		rows = append(rows, detailRow("Tel: "+org.Phone, colors.text, false))
	}
	if org.Email != "" {
		rows = append(rows, detailRow("Email: "+org.Email, colors.text, false))
	}
	if org.TaxID != "" {
		rows = append(rows, detailRow("BTW: "+org.TaxID, colors.text, false))
	}
	return rows
}

// partyRows: FACTUUR AAN (client) left and FACTUURGEGEVENS (dates) right.
func partyRows(invoice *entity.Invoice, client *entity.Client, colors scheme) []core.Row {
	left := []core.Component{
		text.New("FACTUUR AAN", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colors.primary, Top: 1,
		}),
	}
	top := 7.0
	if client != nil {
		left = append(left, text.New(client.Name, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: top, Color: colors.text,
		}))
		top += 5
		if client.Address != "" {
			left = append(left, text.New(client.Address, props.Text{Size: 9, Top: top, Color: colors.text}))
			top += 4
		}
		if client.City != "" && client.Country != "" {
			left = append(left, text.New(client.City+", "+client.Country, props.Text{Size: 9, Top: top, Color: colors.text}))
			top += 4
		}
		if client.Email != "" {
			left = append(left, text.New(client.Email, props.Text{Size: 9, Top: top, Color: colors.text}))
		}
	}

	right := []core.Component{
		text.New("FACTUURGEGEVENS", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colors.primary, Top: 1,
		}),
		text.New("Factuurdatum:", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 7, Color: colors.text,
		}),
		text.New(invoice.IssueDate.Format(dutchDate), props.Text{Size: 9, Top: 11, Color: colors.text}),
		text.New("Vervaldatum:", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 16, Color: colors.text,
		}),
		text.New(invoice.DueDate.Format(dutchDate), props.Text{Size: 9, Top: 20, Color: colors.text}),
	}

	return []core.Row{
		row.New(26).Add(
			col.New(6).Add(left...),
			col.New(6).Add(right...),
		),
	}
}

// itemTableHeaderRow: primary background with inverse text.
func itemTableHeaderRow(colors scheme, grid bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: white, Top: 2, Left: 2, Right: 2,
		}))
	}
	r := row.New(9).Add(
		h("Omschrijving", 6, align.Left),
		h("Aantal", 2, align.Right),
		h("Prijs per Stuk", 2, align.Right),
		h("Bedrag", 2, align.Right),
	)
	style := &props.Cell{BackgroundColor: colors.primary}
	if grid {
		style.BorderType = border.Full
		style.BorderColor = colors.secondary
		style.BorderThickness = 0.3
	}
	return r.WithStyle(style)
}

// itemRows: one row per line, alternating light tint. Grid adds cell
// borders; plain leaves them off.
func itemRows(items []*entity.InvoiceItem, colors scheme, grid bool) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 9, Align: a, Top: 2, Left: 2, Right: 2, Color: colors.text,
		}))
	}
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(8).Add(
			cell(it.Description, 6, align.Left),
			cell(it.Quantity.String(), 2, align.Right),
			cell(money.Format(it.UnitPrice), 2, align.Right),
			cell(money.Format(it.Amount), 2, align.Right),
		)
		style := &props.Cell{}
		if i%2 == 0 {
			style.BackgroundColor = colors.light
		}
		if grid {
			style.BorderType = border.Full
			style.BorderColor = colors.primary
			style.BorderThickness = 0.2
		}
		rows = append(rows, r.WithStyle(style))
	}
	return rows
}

// totalsRows: right-aligned card with Subtotaal, BTW and emphasized TOTAAL.
func totalsRows(invoice *entity.Invoice, colors scheme) []core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Top: top, Left: 2, Color: colors.text})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Right: 2, Color: colors.text})
	}

	return []core.Row{
		row.New(6).Add(
			col.New(7),
			col.New(5).Add(text.New("TOTALEN", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colors.primary, Top: 1, Left: 2,
			})),
		),
		row.New(12).Add(
			col.New(7),
			col.New(5).WithStyle(&props.Cell{BackgroundColor: colors.light}).Add(
				label("Subtotaal:", 1),
				value(money.Format(invoice.Subtotal), 1),
				label("BTW ("+invoice.TaxRate.String()+"%):", 6),
				value(money.Format(invoice.TaxAmount), 6),
			),
		),
		row.New(1).Add(
			col.New(7),
			col.New(5).Add(line.New(props.Line{Color: colors.primary, Thickness: 0.8})),
		),
		row.New(8).Add(
			col.New(7),
			col.New(5).Add(
				text.New("TOTAAL:", props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 1, Left: 2, Color: colors.primary,
				}),
				text.New(money.Format(invoice.Total), props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Right: 2, Color: colors.primary,
				}),
			),
		),
	}
}

// notesRows: Notities and Algemene Voorwaarden blocks, only when present.
func notesRows(invoice *entity.Invoice, colors scheme) []core.Row {
	var rows []core.Row
	if invoice.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(text.New("Notities:", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colors.text,
			}))),
			row.New(10).Add(col.New(12).Add(text.New(invoice.Notes, props.Text{
				Size: 9, Color: colors.text,
			}))),
		)
	}
	if invoice.Terms != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(text.New("Algemene Voorwaarden:", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colors.text,
			}))),
			row.New(10).Add(col.New(12).Add(text.New(invoice.Terms, props.Text{
				Size: 9, Color: colors.text,
			}))),
		)
	}
	return rows
}

// footerRows: organization recap, thank-you line and generation timestamp.
func footerRows(org *entity.Organization, colors scheme, now time.Time) []core.Row {
	rows := []core.Row{
		line.NewRow(2, props.Line{Color: colors.primary, Thickness: 0.8}),
	}

	left := make([]core.Component, 0, 5)
	if org != nil {
		name := org.Name
		if name == "" {
			name = fallbackOrgName
		}
		left = append(left, text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Color: colors.text,
		}))
		top := 6.0
		if org.Address != "" {
			left = append(left, text.New(org.Address, props.Text{Size: 8, Top: top, Color: colors.text}))
			top += 4
		}
		if org.City != "" && org.Country != "" {
			left = append(left, text.New(org.City+", "+org.Country, props.Text{Size: 8, Top: top, Color: colors.text}))
			top += 4
		}
		if org.Email != "" {
			left = append(left, text.New(org.Email, props.Text{Size: 8, Top: top, Color: colors.text}))
			top += 4
		}
		if org.TaxID != "" {
			left = append(left, text.New("BTW: "+org.TaxID, props.Text{Size: 8, Top: top, Color: colors.text}))
		}
	}

	rows = append(rows, row.New(22).Add(
		col.New(5).Add(left...),
		col.New(7).Add(
			text.New("Bedankt voor je vertrouwen!", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colors.primary, Top: 2,
			}),
			text.New(
				"Gegenereerd op: "+now.Format(dutchDate)+" om "+now.Format("15:04"),
				props.Text{Size: 7, Align: align.Center, Top: 9, Color: slate500},
			),
		),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func detailRow(s string, color *props.Color, bold bool) core.Row {
	p := props.Text{Size: 9, Top: 0.5, Color: color}
	if bold {
		p.Style = fontstyle.Bold
	}
	return row.New(4.5).Add(col.New(12).Add(text.New(s, p)))
}
