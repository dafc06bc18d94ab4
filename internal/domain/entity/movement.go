package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindInbound  = "inbound"  // entrada: suma al stock
	MovementKindOutbound = "outbound" // salida: resta del stock
)

// Movement es una entrada del libro de movimientos de stock. Una vez
// persistida es inmutable: no existe camino de actualización ni borrado.
type Movement struct {
	ID         string
	Kind       string
	Quantity   int64 // siempre positivo; el signo lo da Kind
	ProductID  string
	EmployeeID string // empleado que registró el movimiento (vacío si no aplica)
	Date       time.Time
	CreatedAt  time.Time
}
