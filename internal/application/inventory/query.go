package inventory

import (
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del libro de movimientos. Solo consulta:
// el libro no se edita ni se borra.
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consulta.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// GetByID devuelve un movimiento por ID, nil si no existe.
func (uc *MovementQueryUseCase) GetByID(id string) (*entity.Movement, error) {
	return uc.movRepo.GetByID(id)
}

// List devuelve los movimientos más recientes, paginados. Si productID no
// está vacío filtra por producto.
func (uc *MovementQueryUseCase) List(productID string, limit, offset int) ([]*entity.Movement, error) {
	if productID != "" {
		return uc.movRepo.ListByProduct(productID, limit, offset)
	}
	return uc.movRepo.List(limit, offset)
}
