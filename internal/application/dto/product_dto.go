package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock
// inicial; después de la creación solo lo mutan los movimientos.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	ExpiresAt   string          `json:"expires_at"` // formato 2006-01-02
	SupplierID  string          `json:"supplier_id"`
	CategoryID  string          `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// No incluye Quantity: el stock se maneja vía movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ExpiresAt   *string          `json:"expires_at,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	ExpiresAt   string          `json:"expires_at"`
	SupplierID  string          `json:"supplier_id"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
