package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	// Create inserta la categoría y asigna su ID.
	Create(c *entity.Category) error
	// List devuelve todas las categorías ordenadas por nombre.
	List() ([]*entity.Category, error)
}
