package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstock-api/internal/application/report"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// stubReportRepo devuelve filas fijas o un error.
type stubReportRepo struct {
	rows []repository.MovementTotalsRow
	err  error
}

func (s *stubReportRepo) MovementTotals(ctx context.Context) ([]repository.MovementTotalsRow, error) {
	return s.rows, s.err
}

func TestBuildMovementReport_AgrupaPorProducto(t *testing.T) {
	repo := &stubReportRepo{rows: []repository.MovementTotalsRow{
		{ProductName: "Teclado", Kind: entity.MovementKindInbound, Total: 30, EmployeeName: "Ana", SupplierName: "TecnoSul"},
		{ProductName: "Teclado", Kind: entity.MovementKindOutbound, Total: 12, EmployeeName: "Ana", SupplierName: "TecnoSul"},
		{ProductName: "Mouse", Kind: entity.MovementKindInbound, Total: 8, SupplierName: "Periféricos SA"},
	}}
	uc := report.NewMovementReportUseCase(repo)

	data, err := uc.BuildMovementReport(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 2)

	teclado := data["Teclado"]
	assert.Equal(t, int64(30), teclado.InboundTotal)
	assert.Equal(t, int64(12), teclado.OutboundTotal)
	assert.Equal(t, "Ana", teclado.EmployeeName)
	assert.Equal(t, "TecnoSul", teclado.SupplierName)

	// Mouse solo tiene entradas: la salida queda en cero.
	mouse := data["Mouse"]
	assert.Equal(t, int64(8), mouse.InboundTotal)
	assert.Equal(t, int64(0), mouse.OutboundTotal)
	assert.Empty(t, mouse.EmployeeName, "movimiento sin empleado no inventa nombre")
}

func TestBuildMovementReport_SumaFilasDelMismoTipo(t *testing.T) {
	// Varias filas para el mismo producto y tipo (distintos empleados) se suman.
	repo := &stubReportRepo{rows: []repository.MovementTotalsRow{
		{ProductName: "Monitor", Kind: entity.MovementKindOutbound, Total: 5, EmployeeName: "Ana", SupplierName: "TecnoSul"},
		{ProductName: "Monitor", Kind: entity.MovementKindOutbound, Total: 3, EmployeeName: "Bruno", SupplierName: "TecnoSul"},
	}}
	uc := report.NewMovementReportUseCase(repo)

	data, err := uc.BuildMovementReport(context.Background())
	require.NoError(t, err)

	monitor := data["Monitor"]
	assert.Equal(t, int64(8), monitor.OutboundTotal)
	assert.Equal(t, "Bruno", monitor.EmployeeName, "gana el último empleado visto")
}

func TestBuildMovementReport_SinMovimientos(t *testing.T) {
	uc := report.NewMovementReportUseCase(&stubReportRepo{})

	data, err := uc.BuildMovementReport(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestBuildMovementReport_PropagaErrorDeConsulta(t *testing.T) {
	repo := &stubReportRepo{err: errors.New("query timeout")}
	uc := report.NewMovementReportUseCase(repo)

	_, err := uc.BuildMovementReport(context.Background())
	assert.Error(t, err)
}
