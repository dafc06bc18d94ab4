package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// Date es opcional; vacío usa la fecha actual del servidor.
type RecordMovementRequest struct {
	Kind       string `json:"kind"`
	Quantity   int64  `json:"quantity"`
	ProductID  string `json:"product_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"` // formato 2006-01-02
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Quantity   int64     `json:"quantity"`
	ProductID  string    `json:"product_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}
