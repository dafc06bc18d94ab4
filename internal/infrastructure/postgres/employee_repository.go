package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
	"github.com/jhoicas/techstock-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, cpf, email, phone, role, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.CPF, employee.Email,
		nullable(employee.Phone), employee.Role, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getBy("id", id)
}

// GetByCPF obtiene un empleado por CPF.
func (r *EmployeeRepo) GetByCPF(cpf string) (*entity.Employee, error) {
	return r.getBy("cpf", cpf)
}

// GetByEmail obtiene un empleado por email.
func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	return r.getBy("email", email)
}

// GetByPhone obtiene un empleado por teléfono.
func (r *EmployeeRepo) GetByPhone(phone string) (*entity.Employee, error) {
	return r.getBy("phone", phone)
}

// List lista empleados con paginación, ordenados por nombre.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado existente.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, cpf = $3, email = $4, phone = $5, role = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.CPF, employee.Email,
		nullable(employee.Phone), employee.Role, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID. Los movimientos que lo referencian
// conservan la fila con employee_id en NULL (ON DELETE SET NULL).
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) getBy(column, value string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + column + ` = $1`
	row := r.q.QueryRow(context.Background(), query, value)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by %s: %w", column, err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*entity.Employee, error) {
	var e entity.Employee
	var phone *string
	if err := row.Scan(&e.ID, &e.Name, &e.CPF, &e.Email, &phone, &e.Role, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if phone != nil {
		e.Phone = *phone
	}
	return &e, nil
}

// nullable convierte un string vacío en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
