package report

import (
	"context"

	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// MovementReportUseCase arma el reporte agregado de movimientos para la
// vista de gráfico: totales por producto y tipo, con nombres de empleado y
// proveedor. Solo lectura, nunca muta el libro.
type MovementReportUseCase struct {
	repo repository.ReportRepository
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(repo repository.ReportRepository) *MovementReportUseCase {
	return &MovementReportUseCase{repo: repo}
}

// BuildMovementReport agrupa los totales por nombre de producto. Si un tipo
// no tiene movimientos para un producto, su total queda en cero. Cuando el
// join devuelve varios nombres de empleado o proveedor para el mismo
// producto, gana el último visto (misma semántica de agrupación de la
// consulta subyacente).
func (uc *MovementReportUseCase) BuildMovementReport(ctx context.Context) (map[string]dto.ProductMovementReport, error) {
	rows, err := uc.repo.MovementTotals(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string]dto.ProductMovementReport, len(rows))
	for _, row := range rows {
		entry := data[row.ProductName]
		switch row.Kind {
		case entity.MovementKindInbound:
			entry.InboundTotal += row.Total
		case entity.MovementKindOutbound:
			entry.OutboundTotal += row.Total
		}
		if row.EmployeeName != "" {
			entry.EmployeeName = row.EmployeeName
		}
		entry.SupplierName = row.SupplierName
		data[row.ProductName] = entry
	}
	return data, nil
}
