package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdcastano/stock-control-api/internal/application/dto"
	"github.com/jdcastano/stock-control-api/internal/application/usecase"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type memProductRepo struct {
	byID       map[string]*entity.Product
	categories *memCategoryRepo
}

func newMemProductRepo(categories *memCategoryRepo) *memProductRepo {
	return &memProductRepo{byID: make(map[string]*entity.Product), categories: categories}
}

// withCategory imita el join de lectura: anida la categoría en la copia devuelta.
func (r *memProductRepo) withCategory(p *entity.Product) *entity.Product {
	cp := *p
	if c, _ := r.categories.GetByID(p.CategoryID); c != nil {
		cp.Category = c
	}
	return &cp
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	cp.Category = nil
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return r.withCategory(p), nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	cp.Category = nil
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, r.withCategory(p))
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) UpdateStock(id string, currentStock int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = currentStock
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCategoryID = "33333333-3333-3333-3333-333333333333"

func buildProductUC(t *testing.T) (*usecase.ProductUseCase, *memProductRepo) {
	t.Helper()
	categories := newMemCategoryRepo()
	require.NoError(t, categories.Create(&entity.Category{ID: testCategoryID, Name: "Router"}))
	products := newMemProductRepo(categories)
	return usecase.NewProductUseCase(products, categories), products
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Cisco ISR 1101",
		Description:  "ISR 1101 4 Ports GE Ethernet WAN Router",
		CategoryID:   testCategoryID,
		CurrentStock: 500,
		ReorderPoint: 150,
		Price:        decimal.RequireFromString("1000.00"),
		SKU:          "XYZ123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// La respuesta de creación lleva la categoría anidada, no solo su ID.
func TestProductCreate_RespuestaConCategoriaAnidada(t *testing.T) {
	uc, _ := buildProductUC(t)

	out, err := uc.Create(validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Cisco ISR 1101", out.Name)
	assert.Equal(t, "XYZ123", out.SKU)
	assert.Equal(t, 500, out.CurrentStock)
	assert.Equal(t, testCategoryID, out.CategoryID)
	require.NotNil(t, out.Category, "la respuesta debe anidar la categoría")
	assert.Equal(t, "Router", out.Category.Name)
}

func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	uc, _ := buildProductUC(t)

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Name = "Otro producto con el mismo SKU"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente_Rechazada(t *testing.T) {
	uc, _ := buildProductUC(t)

	in := validCreateRequest()
	in.CategoryID = "99999999-9999-9999-9999-999999999999"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ValoresNegativos_Rechazados(t *testing.T) {
	uc, _ := buildProductUC(t)

	in := validCreateRequest()
	in.CurrentStock = -1
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")

	in = validCreateRequest()
	in.ReorderPoint = -1
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "punto de reorden negativo")

	in = validCreateRequest()
	in.Price = decimal.RequireFromString("-10")
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / GetByID / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc, _ := buildProductUC(t)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	newName := "Cisco ISR 1101-X"
	newPrice := decimal.RequireFromString("1200.00")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cisco ISR 1101-X", out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	// Lo no enviado se conserva.
	assert.Equal(t, "XYZ123", out.SKU)
	assert.Equal(t, 500, out.CurrentStock,
		"la actualización de producto nunca toca el stock")
}

func TestProductUpdate_SKUDeOtroProducto_Rechazado(t *testing.T) {
	uc, _ := buildProductUC(t)

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Name = "HP 5406zl"
	second.SKU = "ABC456"
	created, err := uc.Create(second)
	require.NoError(t, err)

	taken := "XYZ123"
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente_Retorna404(t *testing.T) {
	uc, _ := buildProductUC(t)
	name := "Nada"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_ConCategoria(t *testing.T) {
	uc, _ := buildProductUC(t)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Router", out.Category.Name)
}

func TestProductDelete_Inexistente_Retorna404(t *testing.T) {
	uc, repo := buildProductUC(t)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.byID)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
