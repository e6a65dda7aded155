package catalog

import (
	"context"
	"strings"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Usecase orquesta el catálogo: productos y categorías.
// Crear o editar un producto con stock toca también inventario y
// movimientos, por eso esas rutas corren en transacción.
type Usecase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tx           TxRunner
}

func NewUsecase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	tx TxRunner,
) *Usecase {
	return &Usecase{productRepo: productRepo, categoryRepo: categoryRepo, tx: tx}
}

// List devuelve los productos que pasan los filtros, ordenados por nombre.
func (u *Usecase) List(f repository.ProductFilter) ([]*entity.ProductWithStock, error) {
	return u.productRepo.List(f)
}

// Get devuelve un producto con categoría y stock.
func (u *Usecase) Get(id int64) (*entity.ProductWithStock, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := u.productRepo.GetWithStock(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Create da de alta un producto con su fila de inventario y, si trae
// stock inicial, el movimiento de entrada correspondiente.
func (u *Usecase) Create(ctx context.Context, req dto.CreateProductRequest) (*entity.ProductWithStock, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" || req.Precio == nil || req.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if req.Stock == nil || *req.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock := *req.Stock
	temporada := strings.TrimSpace(req.Temporada)
	if temporada == "" {
		temporada = entity.TemporadaRegular
	}

	p := &entity.Product{
		Name:        nombre,
		Description: req.Descripcion,
		Price:       *req.Precio,
		CategoryID:  req.IDCategoria,
		Temporada:   temporada,
		ImagenURL:   req.ImagenURL,
		Activo:      true,
	}
	err := u.tx.Run(ctx, func(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) error {
		if err := productRepo.Create(p); err != nil {
			return err
		}
		// La fila de inventario existe desde el alta, aunque sea en cero.
		if err := invRepo.AddQuantity(p.ID, stock); err != nil {
			return err
		}
		if stock > 0 {
			return movRepo.Create(&entity.Movement{
				ProductID: p.ID,
				Type:      entity.MovementEntrada,
				Quantity:  stock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.productRepo.GetWithStock(p.ID)
}

// Update edita los campos presentes del producto. Si trae stock, lo fija
// como cantidad absoluta y registra la diferencia como movimiento.
func (u *Usecase) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*entity.ProductWithStock, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.Precio != nil && req.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}

	err := u.tx.Run(ctx, func(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		if req.Nombre != nil {
			p.Name = strings.TrimSpace(*req.Nombre)
		}
		if req.Descripcion != nil {
			p.Description = *req.Descripcion
		}
		if req.Precio != nil {
			p.Price = *req.Precio
		}
		if req.IDCategoria != nil {
			p.CategoryID = req.IDCategoria
		}
		if req.Temporada != nil && strings.TrimSpace(*req.Temporada) != "" {
			p.Temporada = strings.TrimSpace(*req.Temporada)
		}
		if req.ImagenURL != nil {
			p.ImagenURL = *req.ImagenURL
		}
		if req.Activo != nil {
			p.Activo = *req.Activo
		}
		if err := productRepo.Update(p); err != nil {
			return err
		}

		if req.Stock == nil {
			return nil
		}
		return applyStockAdjustment(movRepo, invRepo, id, *req.Stock)
	})
	if err != nil {
		return nil, err
	}
	return u.productRepo.GetWithStock(id)
}

// applyStockAdjustment fija el stock en una cantidad absoluta dentro de la
// transacción en curso y registra la diferencia como movimiento.
func applyStockAdjustment(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, productID, newQuantity int64) error {
	inv, err := invRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	var current int64
	if inv == nil {
		if err := invRepo.AddQuantity(productID, newQuantity); err != nil {
			return err
		}
	} else {
		current = inv.Quantity
		if _, err := invRepo.SetQuantity(productID, newQuantity); err != nil {
			return err
		}
	}

	delta := newQuantity - current
	switch {
	case delta > 0:
		return movRepo.Create(&entity.Movement{
			ProductID: productID,
			Type:      entity.MovementEntrada,
			Quantity:  delta,
		})
	case delta < 0:
		return movRepo.Create(&entity.Movement{
			ProductID:  productID,
			Type:       entity.MovementSalida,
			Quantity:   -delta,
			Referencia: entity.ReferenciaAjusteManual,
		})
	}
	return nil
}

// Deactivate da de baja lógica un producto. Las líneas de carrito que lo
// referencian quedan, pero dejan de aparecer al listar.
func (u *Usecase) Deactivate(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	ok, err := u.productRepo.Deactivate(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListCategories devuelve todas las categorías ordenadas por nombre.
func (u *Usecase) ListCategories() ([]*entity.Category, error) {
	return u.categoryRepo.List()
}

// CreateCategory da de alta una categoría.
func (u *Usecase) CreateCategory(req dto.CreateCategoryRequest) (*entity.Category, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{Name: nombre, Description: req.Descripcion}
	if err := u.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}
