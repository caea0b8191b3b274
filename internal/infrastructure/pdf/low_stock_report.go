// Package pdf implementa la generación del reporte imprimible de productos en
// stock bajo (lista de reposición) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/stocksync-api/internal/application/dashboard"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 200, Green: 80, Blue: 0}
)

var _ dashboard.LowStockPDFGenerator = (*LowStockReportGenerator)(nil)

// LowStockReportGenerator implementa dashboard.LowStockPDFGenerator usando Maroto v2.
type LowStockReportGenerator struct{}

// NewLowStockReportGenerator construye el generador.
func NewLowStockReportGenerator() *LowStockReportGenerator {
	return &LowStockReportGenerator{}
}

// GenerateLowStockReport genera el PDF y devuelve sus bytes.
func (g *LowStockReportGenerator) GenerateLowStockReport(
	_ context.Context,
	items []*entity.ProductWithCategory,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock Bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	if len(items) == 0 {
		m.AddRows(row.New(10).Add(
			col.New(12).Add(text.New("No hay productos con stock bajo.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación + total de ítems (der).
func headerRow(generatedAt time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("StockSync", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos con stock bajo — lista de reposición", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d producto(s)", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9, Color: colorAlert,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cantidad", 1, align.Center),
		h("Mínimo", 1, align.Center),
		h("Ubicación", 2, align.Left),
	)
}

// tableRows: una fila por producto en stock bajo.
func tableRows(items []*entity.ProductWithCategory) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				nonEmpty(p.SKU, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(categoryName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Quantity),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorAlert},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.MinQuantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(p.Location, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
