package repository

import "github.com/jhoicas/techstock-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetForUpdate y UpdateQuantity existen para el motor de movimientos y solo
// tienen sentido dentro de una transacción (ver inventory.TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Serializa los movimientos concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity fija el stock disponible. Solo la usa el motor de movimientos.
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
