package entity

import "time"

// User cuenta de acceso a la aplicación (login/registro). No es lo mismo
// que Employee: el empleado es un dato de gestión, el user es credencial.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
