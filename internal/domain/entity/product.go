package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Quantity es el stock
// disponible y solo lo muta el motor de movimientos; el CRUD de productos
// no lo toca después de la creación.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int64
	ExpiresAt   time.Time // fecha de vencimiento
	SupplierID  string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
