package entity

import "time"

// Supplier representa un proveedor de productos. Phone y Email son únicos.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
