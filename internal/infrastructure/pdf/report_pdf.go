// Package pdf genera el reporte de movimientos de stock en PDF con
// Maroto v2: una tabla con los totales de entrada/salida por producto y los
// nombres de empleado y proveedor asociados.
package pdf

import (
	"fmt"
	"sort"
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

	"github.com/jhoicas/techstock-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MovementReportGenerator genera el PDF del reporte de movimientos.
type MovementReportGenerator struct{}

// NewMovementReportGenerator construye el generador.
func NewMovementReportGenerator() *MovementReportGenerator {
	return &MovementReportGenerator{}
}

// Generate arma el PDF y devuelve sus bytes. Las filas se ordenan por
// nombre de producto para que el documento sea estable entre ejecuciones.
func (g *MovementReportGenerator) Generate(report map[string]dto.ProductMovementReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	names := make([]string, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m.AddRows(tableDataRow(name, report[name]))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Movimientos de stock por producto", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		)
	}
	return row.New(7).Add(
		header("Producto", 4),
		header("Entradas", 2),
		header("Salidas", 2),
		header("Empleado", 2),
		header("Proveedor", 2),
	)
}

func tableDataRow(name string, entry dto.ProductMovementReport) core.Row {
	cell := func(value string, size int, al align.Type) core.Col {
		return col.New(size).Add(
			text.New(value, props.Text{Size: 8, Top: 1, Align: al}),
		)
	}
	return row.New(6).Add(
		cell(name, 4, align.Left),
		cell(fmt.Sprintf("%d", entry.InboundTotal), 2, align.Right),
		cell(fmt.Sprintf("%d", entry.OutboundTotal), 2, align.Right),
		cell(entry.EmployeeName, 2, align.Left),
		cell(entry.SupplierName, 2, align.Left),
	)
}

func footerRow() core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Generado el "+generated, props.Text{Size: 7, Color: colorGray, Top: 1}),
		),
	)
}
