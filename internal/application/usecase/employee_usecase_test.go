package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/application/usecase"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
)

// fakeEmployeeRepo repositorio de empleados en memoria.
type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByCPF(cpf string) (*entity.Employee, error) {
	return r.findBy(func(e *entity.Employee) bool { return e.CPF == cpf })
}

func (r *fakeEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	return r.findBy(func(e *entity.Employee) bool { return e.Email == email })
}

func (r *fakeEmployeeRepo) GetByPhone(phone string) (*entity.Employee, error) {
	return r.findBy(func(e *entity.Employee) bool { return e.Phone == phone })
}

func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) findBy(match func(*entity.Employee) bool) (*entity.Employee, error) {
	for _, e := range r.byID {
		if match(e) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func validEmployee() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:  "Ana Souza",
		CPF:   "123.456.789-00",
		Email: "ana@techstock.com",
		Phone: "+55 11 91234-5678",
		Role:  "almacenista",
	}
}

func TestEmployeeCreate_OK(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	out, err := uc.Create(validEmployee())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana Souza", out.Name)
}

// El teléfono es opcional: se puede crear sin él, y dos empleados sin
// teléfono no chocan entre sí (la unicidad solo aplica si hay valor).
func TestEmployeeCreate_SinTelefono(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	in := validEmployee()
	in.Phone = ""
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out.Phone)

	otro := validEmployee()
	otro.Phone = ""
	otro.CPF = "987.654.321-00"
	otro.Email = "bruno@techstock.com"
	_, err = uc.Create(otro)
	require.NoError(t, err, "dos empleados sin teléfono no deben colisionar")
}

func TestEmployeeCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	in := validEmployee()
	in.CPF = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada campo único colisionado produce su error propio.
func TestEmployeeCreate_Duplicados(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)
	_, err := uc.Create(validEmployee())
	require.NoError(t, err)

	t.Run("cpf duplicado", func(t *testing.T) {
		in := validEmployee()
		in.Email = "otro@techstock.com"
		in.Phone = "+55 11 98888-0000"
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
	})

	t.Run("email duplicado", func(t *testing.T) {
		in := validEmployee()
		in.CPF = "987.654.321-00"
		in.Phone = "+55 11 97777-0000"
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("teléfono duplicado", func(t *testing.T) {
		in := validEmployee()
		in.CPF = "111.222.333-44"
		in.Email = "tercero@techstock.com"
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	})
}

// Actualizar sin cambiar los campos únicos no debe chocar consigo mismo.
func TestEmployeeUpdate_NoColisionaConsigoMismo(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)
	created, err := uc.Create(validEmployee())
	require.NoError(t, err)

	newName := "Ana Lima"
	out, err := uc.Update(created.ID, dto.UpdateEmployeeRequest{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Ana Lima", out.Name)
	assert.Equal(t, created.CPF, out.CPF, "el CPF no debe cambiar")
}

func TestEmployeeUpdate_CPFDeOtroEmpleado(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)
	_, err := uc.Create(validEmployee())
	require.NoError(t, err)

	otro := validEmployee()
	otro.CPF = "987.654.321-00"
	otro.Email = "bruno@techstock.com"
	otro.Phone = "+55 11 95555-0000"
	creado, err := uc.Create(otro)
	require.NoError(t, err)

	cpfAjeno := "123.456.789-00"
	_, err = uc.Update(creado.ID, dto.UpdateEmployeeRequest{CPF: &cpfAjeno})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestEmployeeUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	name := "Nadie"
	out, err := uc.Update("no-existe", dto.UpdateEmployeeRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "empleado inexistente devuelve nil sin error")
}
