package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// CustomerRepository puerto de persistencia para cuentas.
type CustomerRepository interface {
	// Create inserta la cuenta y asigna su ID.
	// Devuelve domain.ErrDuplicate si el username ya existe.
	Create(c *entity.Customer) error
	// GetByUsername devuelve la cuenta, o nil si no existe.
	GetByUsername(username string) (*entity.Customer, error)
	// GetByID devuelve la cuenta, o nil si no existe.
	GetByID(id int64) (*entity.Customer, error)
}
