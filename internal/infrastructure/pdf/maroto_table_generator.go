// Package pdf genera la exportación en PDF del tablero de asignación de marcas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Brand | Classification | Status | Terms | Factories  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total de marcas listadas                                    │
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

	"github.com/brandops/allocation-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoTableGenerator implementa export.TableGenerator usando Maroto v2.
type MarotoTableGenerator struct{}

var _ export.TableGenerator = (*MarotoTableGenerator)(nil)

// NewMarotoTableGenerator construye el generador.
func NewMarotoTableGenerator() *MarotoTableGenerator { return &MarotoTableGenerator{} }

// GenerateAllocationPDF genera el PDF del tablero y devuelve sus bytes.
func (g *MarotoTableGenerator) GenerateAllocationPDF(_ context.Context, title string, rows []export.BrandRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for i, r := range rows {
		m.AddRows(tableDataRow(r, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 5, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(width int, label string) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(3, "Brand"),
		header(2, "Classification"),
		header(1, "Status"),
		header(2, "Shipment Terms"),
		header(4, "Assigned Factories"),
	)
}

func tableDataRow(r export.BrandRow, zebra bool) core.Row {
	cell := func(width int, value string) core.Col {
		c := col.New(width).Add(text.New(value, props.Text{Size: 8, Top: 1}))
		if zebra {
			c.WithStyle(&props.Cell{BackgroundColor: colorZebra})
		}
		return c
	}
	return row.New(6).Add(
		cell(3, r.Brand),
		cell(2, r.Classification),
		cell(1, r.Status),
		cell(2, r.ShipmentTerms),
		cell(4, r.Factories),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d marcas", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
