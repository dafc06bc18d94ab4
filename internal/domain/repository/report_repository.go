package repository

import "context"

// MovementTotalsRow fila del agregado de movimientos: total por producto y
// tipo, con los nombres de empleado y proveedor del join.
type MovementTotalsRow struct {
	ProductName  string
	Kind         string
	Total        int64
	EmployeeName string // vacío si el movimiento no registró empleado
	SupplierName string
}

// ReportRepository consultas de solo lectura para el reporte de movimientos.
type ReportRepository interface {
	MovementTotals(ctx context.Context) ([]MovementTotalsRow, error)
}
