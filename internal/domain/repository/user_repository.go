package repository

import "github.com/jhoicas/techstock-api/internal/domain/entity"

// UserRepository puerto de persistencia para cuentas de acceso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
