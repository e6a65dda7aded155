package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/cart"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items  []*entity.CartItem
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo { return &fakeCartRepo{nextID: 1} }

func (f *fakeCartRepo) GetActiveItem(customerID, productID int64) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.Activo && it.CustomerID == customerID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) GetOwnedActive(itemID, customerID int64) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.Activo && it.ID == itemID && it.CustomerID == customerID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Insert(item *entity.CartItem) error {
	item.ID = f.nextID
	f.nextID++
	item.Activo = true
	item.CreatedAt = time.Now()
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCartRepo) UpdateQuantity(itemID, quantity int64) error {
	for _, it := range f.items {
		if it.ID == itemID {
			it.Quantity = quantity
			it.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeCartRepo) Deactivate(itemID, customerID int64) (bool, error) {
	for _, it := range f.items {
		if it.Activo && it.ID == itemID && it.CustomerID == customerID {
			it.Activo = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartRepo) DeactivateAll(customerID int64) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.Activo && it.CustomerID == customerID {
			it.Activo = false
			n++
		}
	}
	return n, nil
}

func (f *fakeCartRepo) ListByCustomer(customerID int64) ([]*entity.CartItemView, error) {
	var out []*entity.CartItemView
	for i := len(f.items) - 1; i >= 0; i-- {
		it := f.items[i]
		if it.Activo && it.CustomerID == customerID {
			out = append(out, &entity.CartItemView{
				ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity,
			})
		}
	}
	return out, nil
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
func (f *fakeInventoryRepo) AddQuantity(productID, quantity int64) error { panic("no usado") }
func (f *fakeInventoryRepo) DiscountIfEnough(productID, quantity int64) (bool, error) {
	panic("no usado")
}
func (f *fakeInventoryRepo) SetQuantity(productID, quantity int64) (bool, error) {
	panic("no usado")
}
func (f *fakeInventoryRepo) ListAll() ([]*entity.InventoryDetail, error) { panic("no usado") }
func (f *fakeInventoryRepo) GetDetail(productID int64) (*entity.InventoryDetail, error) {
	panic("no usado")
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { panic("no usado") }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) GetWithStock(id int64) (*entity.ProductWithStock, error) {
	panic("no usado")
}
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.ProductWithStock, error) {
	panic("no usado")
}
func (f *fakeProductRepo) Update(p *entity.Product) error    { panic("no usado") }
func (f *fakeProductRepo) Deactivate(id int64) (bool, error) { panic("no usado") }

type fakeTxRunner struct {
	cart *fakeCartRepo
	inv  *fakeInventoryRepo
	prod *fakeProductRepo
}

func (f *fakeTxRunner) RunCart(ctx context.Context, fn func(
	cartRepo repository.CartRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.cart, f.inv, f.prod)
}

const clienteID = int64(7)

func buildUsecase() (*cart.Usecase, *fakeCartRepo) {
	cartRepo := newFakeCartRepo()
	inv := &fakeInventoryRepo{stock: map[int64]int64{1: 10, 2: 0}}
	prod := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Bolillo", Price: decimal.NewFromInt(3), Activo: true},
		2: {ID: 2, Name: "Rosca", Price: decimal.NewFromInt(150), Activo: true},
		3: {ID: 3, Name: "Descontinuado", Price: decimal.NewFromInt(9), Activo: false},
	}}
	uc := cart.NewUsecase(cartRepo, &fakeTxRunner{cart: cartRepo, inv: inv, prod: prod})
	return uc, cartRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_CreaLineaNueva(t *testing.T) {
	uc, repo := buildUsecase()

	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))

	require.Len(t, repo.items, 1)
	assert.EqualValues(t, 3, repo.items[0].Quantity)
	assert.True(t, repo.items[0].Activo)
}

func TestAdd_AcumulaSobreLaLineaExistente(t *testing.T) {
	uc, repo := buildUsecase()

	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 4))

	require.Len(t, repo.items, 1, "no debe crear una segunda línea del mismo producto")
	assert.EqualValues(t, 7, repo.items[0].Quantity)
}

func TestAdd_LaSumaConLoYaAgregadoNoPuedeSuperarElStock(t *testing.T) {
	uc, repo := buildUsecase()

	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 8))
	err := uc.Add(context.Background(), clienteID, 1, 5) // 8+5 > 10

	se, ok := domain.IsInsufficientStock(err)
	require.True(t, ok, "debe rechazar por stock insuficiente")
	assert.EqualValues(t, 10, se.Disponibles)
	assert.EqualValues(t, 8, repo.items[0].Quantity, "la línea no debe cambiar si el agregado falla")
}

func TestAdd_ProductoSinStock_EsRechazado(t *testing.T) {
	uc, _ := buildUsecase()

	err := uc.Add(context.Background(), clienteID, 2, 1)
	se, ok := domain.IsInsufficientStock(err)
	require.True(t, ok)
	assert.EqualValues(t, 0, se.Disponibles)
}

func TestAdd_ProductoInactivo_EsRechazado(t *testing.T) {
	uc, _ := buildUsecase()

	err := uc.Add(context.Background(), clienteID, 3, 1)
	assert.ErrorIs(t, err, domain.ErrInactiveProduct)
}

func TestAdd_ProductoInexistente_Retorna_NotFound(t *testing.T) {
	uc, _ := buildUsecase()

	err := uc.Add(context.Background(), clienteID, 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambiar cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_ReemplazaLaCantidad(t *testing.T) {
	uc, repo := buildUsecase()
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))

	require.NoError(t, uc.UpdateQuantity(context.Background(), clienteID, repo.items[0].ID, 9))
	assert.EqualValues(t, 9, repo.items[0].Quantity)
}

func TestUpdateQuantity_NoPuedeSuperarElStock(t *testing.T) {
	uc, repo := buildUsecase()
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))

	err := uc.UpdateQuantity(context.Background(), clienteID, repo.items[0].ID, 11)
	_, ok := domain.IsInsufficientStock(err)
	assert.True(t, ok)
}

func TestUpdateQuantity_LineaDeOtroCliente_Retorna_NotFound(t *testing.T) {
	uc, repo := buildUsecase()
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))

	err := uc.UpdateQuantity(context.Background(), clienteID+1, repo.items[0].ID, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un cliente no puede tocar líneas ajenas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Quitar y vaciar
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_DesactivaLaLinea(t *testing.T) {
	uc, repo := buildUsecase()
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))

	require.NoError(t, uc.Remove(clienteID, repo.items[0].ID))
	assert.False(t, repo.items[0].Activo)
}

func TestRemove_LineaInexistente_Retorna_NotFound(t *testing.T) {
	uc, _ := buildUsecase()

	err := uc.Remove(clienteID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClear_VaciaSoloElCarritoDelCliente(t *testing.T) {
	uc, repo := buildUsecase()
	require.NoError(t, uc.Add(context.Background(), clienteID, 1, 3))
	require.NoError(t, uc.Add(context.Background(), clienteID+1, 1, 2))

	n, err := uc.Clear(clienteID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.False(t, repo.items[0].Activo)
	assert.True(t, repo.items[1].Activo, "el carrito de otro cliente no debe tocarse")
}

func TestClear_CarritoVacio_NoEsError(t *testing.T) {
	uc, _ := buildUsecase()

	n, err := uc.Clear(clienteID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
