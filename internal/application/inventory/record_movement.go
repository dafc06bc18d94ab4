package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). Parsea la fecha del formulario
// (YYYY-MM-DD); vacía usa la fecha actual.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, in dto.RecordMovementRequest) (*entity.Movement, error) {
	var date time.Time
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}
	input := MovementInput{
		Kind:       in.Kind,
		Quantity:   in.Quantity,
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Date:       date,
	}
	return uc.RecordMovement(ctx, input)
}
