// Package pdf genera el ticket de venta en PDF con Maroto v2.
//
// Layout del ticket (papel térmico de 80 mm):
//
//	┌──────────────────────────────┐
//	│  Nombre de la tienda          │
//	│  Folio / Fecha / Cajero       │
//	│  ───────────────────────────  │
//	│  Cant | Producto | Importe    │
//	│  ───────────────────────────  │
//	│  Subtotal / IVA / TOTAL       │
//	│  Método de pago               │
//	│  QR del folio + pie           │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/sales"
)

const (
	ticketWidth   = 80.0
	ticketMargin  = 4.0
	baseHeight    = 120.0
	lineRowHeight = 9.0
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

var _ sales.ReceiptGenerator = (*ReceiptGenerator)(nil)

// GenerateReceipt genera el ticket y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(_ context.Context, data sales.ReceiptData) ([]byte, error) {
	// El alto crece con el número de líneas para que el ticket quepa en una sola página.
	height := baseHeight + float64(len(data.Lines))*lineRowHeight

	cfg := config.NewBuilder().
		WithDimensions(ticketWidth, height).
		WithLeftMargin(ticketMargin).WithRightMargin(ticketMargin).
		WithTopMargin(ticketMargin).WithBottomMargin(ticketMargin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("Ticket de venta "+data.SaleID, true).
		WithAuthor(nonEmpty(data.StoreName, "Punto de Venta"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.2}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRows(data.Lines)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.2}))
	m.AddRows(totalsRows(data)...)
	m.AddRows(footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(data sales.ReceiptData) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(nonEmpty(data.StoreName, "Punto de Venta"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorPrimary,
			}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Folio: "+data.SaleID, props.Text{Size: 6, Align: align.Center, Color: colorGray}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Fecha: "+data.Date.Format("02/01/2006 15:04"), props.Text{Size: 7, Align: align.Center}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Cajero: "+nonEmpty(data.Cashier, "-"), props.Text{Size: 7, Align: align.Center}),
		)),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
		}))
	}
	return row.New(5).Add(
		h("Cant.", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Importe", 4, align.Right),
	)
}

// detailRows: nombre e importe en la primera fila; precio unitario e IVA debajo.
func detailRows(lines []sales.ReceiptLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(lineRowHeight).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 7})),
			col.New(6).Add(
				text.New(l.ProductName, props.Text{Size: 7}),
				text.New(fmt.Sprintf("@ $%s  IVA %s%%", formatMoney(l.UnitPrice), l.TaxPercent.String()), props.Text{
					Size: 6, Top: 4, Color: colorGray,
				}),
			),
			col.New(4).Add(text.New("$"+formatMoney(l.Total), props.Text{Size: 7, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(data sales.ReceiptData) []core.Row {
	pair := func(label, value string, bold bool, size float64) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(size/2+2).Add(
			col.New(6).Add(text.New(label, props.Text{Style: style, Size: size, Align: align.Right})),
			col.New(6).Add(text.New(value, props.Text{Style: style, Size: size, Align: align.Right})),
		)
	}
	return []core.Row{
		pair("Subtotal:", "$"+formatMoney(data.Subtotal), false, 7),
		pair("IVA:", "$"+formatMoney(data.TaxTotal), false, 7),
		pair("TOTAL:", "$"+formatMoney(data.Total), true, 10),
		row.New(2),
		row.New(4).Add(col.New(12).Add(
			text.New("Pago: "+nonEmpty(data.PaymentMethod, "-"), props.Text{Size: 7}),
		)),
	}
}

func footerRows(data sales.ReceiptData) []core.Row {
	rows := []core.Row{row.New(3)}
	if data.SaleID != "" {
		rows = append(rows, row.New(24).Add(
			col.New(3),
			col.New(6).Add(code.NewQr(data.SaleID, props.Rect{Percent: 100, Center: true})),
			col.New(3),
		))
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(nonEmpty(data.Footer, "¡Gracias por su compra!"), props.Text{
			Size: 7, Align: align.Center, Top: 1, Color: colorGray,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con dos decimales y comas de miles.
// Ej: 25000 → "25,000.00", 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return sign + intPart + "." + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
