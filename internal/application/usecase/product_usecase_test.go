package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstock-api/internal/application/dto"
	"github.com/jhoicas/techstock-api/internal/application/usecase"
	"github.com/jhoicas/techstock-api/internal/domain"
	"github.com/jhoicas/techstock-api/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, q int64) error {
	r.byID[id].Quantity = q
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeSupplierRepo / fakeCategoryRepo solo responden GetByID.
type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) GetByPhone(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) GetByEmail(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(string) error { return nil }

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.byID[id], nil
}
func (r *fakeCategoryRepo) GetByName(string) (*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) List(int, int) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(string) error { return nil }

const (
	testSupplierID = "33333333-3333-3333-3333-333333333333"
	testCategoryID = "44444444-4444-4444-4444-444444444444"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo) {
	productRepo := newFakeProductRepo()
	supplierRepo := &fakeSupplierRepo{byID: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, Name: "TecnoSul"},
	}}
	categoryRepo := &fakeCategoryRepo{byID: map[string]*entity.Category{
		testCategoryID: {ID: testCategoryID, Name: "Periféricos"},
	}}
	return usecase.NewProductUseCase(productRepo, supplierRepo, categoryRepo), productRepo
}

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:       "Teclado mecánico",
		Price:      decimal.NewFromFloat(199.90),
		Quantity:   10,
		ExpiresAt:  "2027-12-31",
		SupplierID: testSupplierID,
		CategoryID: testCategoryID,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc, _ := newProductUC()

	out, err := uc.Create(validProduct())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(10), out.Quantity)
	assert.Equal(t, "2027-12-31", out.ExpiresAt)
}

// La fecha de vencimiento es obligatoria: vacía o malformada se rechaza
// antes de llegar a la persistencia (la columna es NOT NULL).
func TestProductCreate_FechaObligatoria(t *testing.T) {
	uc, repo := newProductUC()

	for _, expiresAt := range []string{"", "31/12/2027"} {
		in := validProduct()
		in.ExpiresAt = expiresAt
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q debe rechazarse", expiresAt)
	}
	assert.Empty(t, repo.byID, "nada debe persistirse")
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc, _ := newProductUC()

	in := validProduct()
	in.Price = decimal.NewFromInt(-1)
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ProveedorInexistente(t *testing.T) {
	uc, _ := newProductUC()

	in := validProduct()
	in.SupplierID = "no-existe"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update nunca toca el stock: el campo no existe en el request y el valor
// persistido se conserva.
func TestProductUpdate_NoTocaStock(t *testing.T) {
	uc, repo := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	newName := "Teclado inalámbrico"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Teclado inalámbrico", out.Name)
	assert.Equal(t, int64(10), out.Quantity)
	assert.Equal(t, int64(10), repo.byID[created.ID].Quantity)
}
