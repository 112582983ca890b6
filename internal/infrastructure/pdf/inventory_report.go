// Package pdf genera el reporte imprimible del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Fecha + filtro aplicado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Stock bajo | Por vencer | Vencidos | Cat. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Categoría | Ubicación | Cant | Estados     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/medstock/internal/application/report"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, data report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title+" · Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(data.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No items found.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, l := range data.Lines {
		m.AddRows(lineRow(l))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data report.Data) core.Row {
	filter := "Todos los artículos"
	if data.Query != "" {
		filter = "Filtro: \"" + data.Query + "\""
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Reporte de inventario", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Fecha: "+data.GeneratedOn, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
			text.New(filter, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func summaryRow(s domaininv.Summary) core.Row {
	card := func(label string, n int) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(n), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		card("Total", s.Total),
		card("Stock bajo", s.LowStock),
		card("Por vencer", s.ExpiringSoon),
		card("Vencidos", s.Expired),
		card("Categorías", s.Categories),
		col.New(1),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Ubicación", 2, align.Left),
		h("Cant / Mín", 2, align.Right),
		h("Stock", 1, align.Center),
		h("Vence", 2, align.Center),
	)
}

func lineRow(l report.Line) core.Row {
	small := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
	}
	expiry := string(l.Expiry)
	if l.ExpiryDate != "" {
		expiry += " " + l.ExpiryDate
	}
	return row.New(7).Add(
		col.New(3).Add(small(l.Name, align.Left)),
		col.New(2).Add(small(l.Category, align.Left)),
		col.New(2).Add(small(l.Location, align.Left)),
		col.New(2).Add(small(l.Qty+" / "+l.Reorder, align.Right)),
		col.New(1).Add(text.New(string(l.Stock), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: stockColor(l.Stock),
		})),
		col.New(2).Add(text.New(expiry, props.Text{
			Size: 7, Align: align.Center, Top: 1, Color: expiryColor(l.Expiry),
		})),
	)
}

func stockColor(s domaininv.StockStatus) *props.Color {
	if s == domaininv.StockLow {
		return colorRed
	}
	return colorGreen
}

func expiryColor(s domaininv.ExpiryStatus) *props.Color {
	switch s {
	case domaininv.ExpiryExpired:
		return colorRed
	case domaininv.ExpiryExpiring:
		return colorAmber
	default:
		return colorGreen
	}
}
