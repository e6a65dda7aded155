package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/catalog"
	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	inv      *fakeInventoryRepo
}

func newFakeProductRepo(inv *fakeInventoryRepo) *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}, nextID: 1, inv: inv}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetWithStock(id int64) (*entity.ProductWithStock, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &entity.ProductWithStock{Product: *p, Stock: f.inv.stock[id]}, nil
}

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.ProductWithStock, error) {
	var out []*entity.ProductWithStock
	for _, p := range f.products {
		if filter.Activo != nil && p.Activo != *filter.Activo {
			continue
		}
		if len(filter.Temporadas) > 0 {
			found := false
			for _, t := range filter.Temporadas {
				if p.Temporada == t {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, &entity.ProductWithStock{Product: *p, Stock: f.inv.stock[p.ID]})
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return nil
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Deactivate(id int64) (bool, error) {
	p, ok := f.products[id]
	if !ok {
		return false, nil
	}
	p.Activo = false
	return true, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range f.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	c.ID = int64(len(f.categories) + 1)
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	return f.categories, nil
}

type fakeInventoryRepo struct {
	stock map[int64]int64
}

func (f *fakeInventoryRepo) Get(productID int64) (*entity.Inventory, error) {
	return f.GetForUpdate(productID)
}
func (f *fakeInventoryRepo) GetForUpdate(productID int64) (*entity.Inventory, error) {
	q, ok := f.stock[productID]
	if !ok {
		return nil, nil
	}
	return &entity.Inventory{ProductID: productID, Quantity: q}, nil
}
func (f *fakeInventoryRepo) AddQuantity(productID, quantity int64) error {
	f.stock[productID] += quantity
	return nil
}
func (f *fakeInventoryRepo) DiscountIfEnough(productID, quantity int64) (bool, error) {
	if f.stock[productID] < quantity {
		return false, nil
	}
	f.stock[productID] -= quantity
	return true, nil
}
func (f *fakeInventoryRepo) SetQuantity(productID, quantity int64) (bool, error) {
	if _, ok := f.stock[productID]; !ok {
		return false, nil
	}
	f.stock[productID] = quantity
	return true, nil
}
func (f *fakeInventoryRepo) ListAll() ([]*entity.InventoryDetail, error) { panic("no usado") }
func (f *fakeInventoryRepo) GetDetail(productID int64) (*entity.InventoryDetail, error) {
	panic("no usado")
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(f.movements) + 1)
	m.Fecha = time.Now()
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(productID int64) ([]*entity.Movement, error) {
	panic("no usado")
}

type fakeTxRunner struct {
	mov  *fakeMovementRepo
	inv  *fakeInventoryRepo
	prod *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.mov, f.inv, f.prod)
}

func buildUsecase() (*catalog.Usecase, *fakeProductRepo, *fakeInventoryRepo, *fakeMovementRepo) {
	inv := &fakeInventoryRepo{stock: map[int64]int64{}}
	prod := newFakeProductRepo(inv)
	mov := &fakeMovementRepo{}
	uc := catalog.NewUsecase(prod, &fakeCategoryRepo{}, &fakeTxRunner{mov: mov, inv: inv, prod: prod})
	return uc, prod, inv, mov
}

func precio(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func stock(n int64) *int64 { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Alta de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ConStockInicial_DejaInventarioYEntrada(t *testing.T) {
	uc, _, inv, mov := buildUsecase()

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Pan de muerto", Precio: precio(45), Temporada: "dia_de_muertos", Stock: stock(20),
	})
	require.NoError(t, err)

	assert.True(t, p.Activo, "los productos nacen activos")
	assert.EqualValues(t, 20, p.Stock)
	assert.EqualValues(t, 20, inv.stock[p.ID])

	require.Len(t, mov.movements, 1)
	assert.Equal(t, entity.MovementEntrada, mov.movements[0].Type)
	assert.EqualValues(t, 20, mov.movements[0].Quantity)
}

func TestCreate_ConStockCero_NoDejaMovimiento(t *testing.T) {
	uc, _, inv, mov := buildUsecase()

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Concha", Precio: precio(15), Stock: stock(0),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TemporadaRegular, p.Temporada, "sin temporada explícita queda regular")
	assert.EqualValues(t, 0, inv.stock[p.ID])
	assert.Empty(t, mov.movements, "stock cero no genera entrada")
}

func TestCreate_CamposObligatoriosAusentes_EsInvalido(t *testing.T) {
	uc, _, _, _ := buildUsecase()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Precio: precio(10), Stock: stock(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre")

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Nombre: "Concha", Stock: stock(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin precio")

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Nombre: "Concha", Precio: precio(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloTocaLosCamposPresentes(t *testing.T) {
	uc, _, _, _ := buildUsecase()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Concha", Descripcion: "vainilla", Precio: precio(15), Stock: stock(0),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.NewFromInt(18)
	got, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Precio: &nuevoPrecio})
	require.NoError(t, err)

	assert.True(t, got.Price.Equal(nuevoPrecio))
	assert.Equal(t, "Concha", got.Name, "los campos ausentes no cambian")
	assert.Equal(t, "vainilla", got.Description)
}

func TestUpdate_StockHaciaAbajo_DejaSalidaDeAjuste(t *testing.T) {
	uc, _, inv, mov := buildUsecase()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Rosca", Precio: precio(150), Stock: stock(12),
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Stock: stock(5)})
	require.NoError(t, err)

	assert.EqualValues(t, 5, inv.stock[p.ID])

	require.Len(t, mov.movements, 2, "la entrada inicial más la salida del ajuste")
	last := mov.movements[1]
	assert.Equal(t, entity.MovementSalida, last.Type)
	assert.EqualValues(t, 7, last.Quantity)
	assert.Equal(t, entity.ReferenciaAjusteManual, last.Referencia)
}

func TestUpdate_ProductoInexistente_Retorna_NotFound(t *testing.T) {
	uc, _, _, _ := buildUsecase()

	_, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja lógica y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivate_SacaElProductoDelListadoActivo(t *testing.T) {
	uc, _, _, _ := buildUsecase()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Concha", Precio: precio(15), Stock: stock(0),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(p.ID))

	activo := true
	list, err := uc.List(repository.ProductFilter{Activo: &activo})
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := uc.Get(p.ID)
	require.NoError(t, err)
	assert.False(t, got.Activo, "el producto sigue consultable por id")
}

func TestDeactivate_ProductoInexistente_Retorna_NotFound(t *testing.T) {
	uc, _, _, _ := buildUsecase()

	assert.ErrorIs(t, uc.Deactivate(99), domain.ErrNotFound)
}

func TestList_FiltraPorTemporada(t *testing.T) {
	uc, _, _, _ := buildUsecase()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Pan de muerto", Precio: precio(45), Temporada: "dia_de_muertos", Stock: stock(0),
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Concha", Precio: precio(15), Stock: stock(0),
	})
	require.NoError(t, err)

	list, err := uc.List(repository.ProductFilter{Temporadas: []string{"dia_de_muertos"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pan de muerto", list[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_YListado(t *testing.T) {
	uc, _, _, _ := buildUsecase()

	c, err := uc.CreateCategory(dto.CreateCategoryRequest{Nombre: "Pan dulce"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	_, err = uc.CreateCategory(dto.CreateCategoryRequest{Nombre: "Pan dulce"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateCategory_SinNombre_EsInvalida(t *testing.T) {
	uc, _, _, _ := buildUsecase()

	_, err := uc.CreateCategory(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
