package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de movimientos.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MovementTotals agrupa las cantidades movidas por producto y tipo,
// uniendo el nombre del proveedor del producto y el del empleado que
// registró el movimiento (vacío si el movimiento no lo registró).
func (r *ReportRepo) MovementTotals(ctx context.Context) ([]repository.MovementTotalsRow, error) {
	const query = `
	SELECT
	    p.name                    AS product_name,
	    m.kind,
	    SUM(m.quantity)::BIGINT   AS total,
	    COALESCE(e.name, '')      AS employee_name,
	    s.name                    AS supplier_name
	FROM movements m
	JOIN products  p ON p.id = m.product_id
	JOIN suppliers s ON s.id = p.supplier_id
	LEFT JOIN employees e ON e.id = m.employee_id
	GROUP BY p.name, m.kind, e.name, s.name
	ORDER BY p.name, m.kind`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.MovementTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.MovementTotalsRow
	for rows.Next() {
		var row repository.MovementTotalsRow
		if err := rows.Scan(
			&row.ProductName,
			&row.Kind,
			&row.Total,
			&row.EmployeeName,
			&row.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("report.MovementTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
