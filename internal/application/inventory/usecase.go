package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock (inbound/outbound) de
// forma transaccional, con bloqueo de fila del producto (SELECT FOR UPDATE)
// y Commit/Rollback. Es el único escritor de Product.Quantity.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// EmployeeID es opcional; Date en cero usa la hora actual.
type MovementInput struct {
	Kind       string
	Quantity   int64
	ProductID  string
	EmployeeID string
	Date       time.Time
}

// RecordMovement valida la entrada, inicia una transacción, bloquea la fila
// del producto, verifica el stock sobre la fila bloqueada y aplica el delta
// junto con el alta del movimiento. Commit si todo ok, Rollback si algo
// falla: ante un error de persistencia no sobrevive ni el movimiento ni el
// cambio de stock.
//
// La verificación de stock ocurre DENTRO de la transacción, después del
// bloqueo de fila: dos salidas concurrentes sobre el mismo producto no
// pueden pasar ambas el chequeo y dejar el stock negativo.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	switch input.Kind {
	case entity.MovementKindInbound, entity.MovementKindOutbound:
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validar que producto y empleado existan antes de abrir la transacción.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if input.EmployeeID != "" {
		employee, err := uc.employeeRepo.GetByID(input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	movement := &entity.Movement{
		ID:         uuid.New().String(),
		Kind:       input.Kind,
		Quantity:   input.Quantity,
		ProductID:  input.ProductID,
		EmployeeID: input.EmployeeID,
		Date:       date,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; el chequeo se hace sobre el valor bloqueado.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		var newQuantity int64
		if input.Kind == entity.MovementKindInbound {
			newQuantity = locked.Quantity + input.Quantity
		} else {
			if locked.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newQuantity = locked.Quantity - input.Quantity
		}

		if err := productRepo.UpdateQuantity(input.ProductID, newQuantity); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
