package entity

import "time"

// Employee representa un empleado. CPF y Email son únicos; Phone es único
// cuando está presente.
type Employee struct {
	ID        string
	Name      string
	CPF       string
	Email     string
	Phone     string
	Role      string // cargo
	CreatedAt time.Time
	UpdatedAt time.Time
}
