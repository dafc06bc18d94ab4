package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. CPF, email y teléfono deben ser únicos; cada
// colisión devuelve su error propio para que el handler muestre el mensaje
// correcto.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.CPF == "" || in.Email == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkUnique(in.CPF, in.Email, in.Phone, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CPF:       in.CPF,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(limit, offset int) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado. Re-verifica unicidad si cambian CPF, email
// o teléfono, excluyendo al propio empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	cpf, email, phone := employee.CPF, employee.Email, employee.Phone
	if in.CPF != nil {
		cpf = *in.CPF
	}
	if in.Email != nil {
		email = *in.Email
	}
	if in.Phone != nil {
		phone = *in.Phone
	}
	if err := uc.checkUnique(cpf, email, phone, id); err != nil {
		return nil, err
	}
	employee.CPF, employee.Email, employee.Phone = cpf, email, phone
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// checkUnique verifica CPF, email y teléfono contra empleados existentes,
// ignorando al empleado con excludeID (vacío en creación).
func (uc *EmployeeUseCase) checkUnique(cpf, email, phone, excludeID string) error {
	if existing, _ := uc.repo.GetByCPF(cpf); existing != nil && existing.ID != excludeID {
		return domain.ErrCPFAlreadyExists
	}
	if existing, _ := uc.repo.GetByEmail(email); existing != nil && existing.ID != excludeID {
		return domain.ErrEmailAlreadyExists
	}
	if phone != "" {
		if existing, _ := uc.repo.GetByPhone(phone); existing != nil && existing.ID != excludeID {
			return domain.ErrPhoneAlreadyExists
		}
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		CPF:       e.CPF,
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
