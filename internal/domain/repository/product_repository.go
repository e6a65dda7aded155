package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// ProductFilter filtros conjuntivos para listar productos.
// Un campo nil/vacío no se aplica.
type ProductFilter struct {
	Temporadas []string // una o varias (IN)
	CategoryID *int64
	Activo     *bool
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create inserta el producto y asigna su ID.
	Create(p *entity.Product) error
	// GetByID devuelve el producto crudo, o nil si no existe.
	GetByID(id int64) (*entity.Product, error)
	// GetWithStock devuelve el producto con categoría y stock, o nil si no existe.
	GetWithStock(id int64) (*entity.ProductWithStock, error)
	// List aplica los filtros y ordena por nombre ascendente.
	List(f ProductFilter) ([]*entity.ProductWithStock, error)
	// Update sobreescribe los campos escalares del producto.
	Update(p *entity.Product) error
	// Deactivate marca activo=false. Devuelve false si el producto no existe.
	Deactivate(id int64) (bool, error)
}
