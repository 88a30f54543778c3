// Package pdf implementa el render del reporte de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SupplySight · Reporte de Inventario + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock total / Demanda total / Fill rate           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | SKU | Bodega | Stock | Dem | Estado │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/supplysight/supplysight-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHealthy  = &props.Color{Red: 22, Green: 128, Blue: 57}
	colorLow      = &props.Color{Red: 178, Green: 138, Blue: 0}
	colorCritical = &props.Color{Red: 180, Green: 35, Blue: 24}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	rows []reports.ReportRow,
	summary reports.ReportSummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("SupplySight - Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("SupplySight", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: agregados del catálogo y fill rate.
func summaryRow(s reports.ReportSummary) core.Row {
	return row.New(10).Add(
		summaryCol("Stock total", fmt.Sprintf("%d", s.TotalStock)),
		summaryCol("Demanda total", fmt.Sprintf("%d", s.TotalDemand)),
		summaryCol("Fill rate", s.FillRate+"%"),
		summaryCol("Productos", fmt.Sprintf("%d", s.Products)),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
	)
}

// tableHeaderRow: encabezados de la tabla de productos.
func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "ID"),
		header(3, "Producto"),
		header(2, "SKU"),
		header(2, "Bodega"),
		header(1, "Stock"),
		header(1, "Demanda"),
		header(1, "Estado"),
	)
}

// tableDetailRow: una fila de producto con el estado coloreado.
func tableDetailRow(r reports.ReportRow) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(2, r.ID),
		cell(3, r.Name),
		cell(2, r.SKU),
		cell(2, r.Warehouse),
		cell(1, fmt.Sprintf("%d", r.Stock)),
		cell(1, fmt.Sprintf("%d", r.Demand)),
		col.New(1).Add(text.New(r.Status, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: statusColor(r.Status),
		})),
	)
}

func statusColor(status string) *props.Color {
	switch status {
	case "Healthy":
		return colorHealthy
	case "Low":
		return colorLow
	case "Critical":
		return colorCritical
	default:
		return colorGray
	}
}
