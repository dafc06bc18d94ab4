package repository

import "github.com/jhoicas/techstock-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia para empleados.
// Los Get* por campo único devuelven (nil, nil) si no existe.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCPF(cpf string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	GetByPhone(phone string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
