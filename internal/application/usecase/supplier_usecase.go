package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. Teléfono y email deben ser únicos.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Phone == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkUnique(in.Phone, in.Email, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update actualiza un proveedor, re-verificando unicidad de teléfono y email.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	phone, email := supplier.Phone, supplier.Email
	if in.Phone != nil {
		phone = *in.Phone
	}
	if in.Email != nil {
		email = *in.Email
	}
	if err := uc.checkUnique(phone, email, id); err != nil {
		return nil, err
	}
	supplier.Phone, supplier.Email = phone, email
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. La BD rechaza el borrado si aún tiene
// productos asociados (FK RESTRICT); el repo lo traduce a ErrConflict.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) checkUnique(phone, email, excludeID string) error {
	if existing, _ := uc.repo.GetByPhone(phone); existing != nil && existing.ID != excludeID {
		return domain.ErrPhoneAlreadyExists
	}
	if existing, _ := uc.repo.GetByEmail(email); existing != nil && existing.ID != excludeID {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
