package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// CartRepository puerto de persistencia para el carrito.
type CartRepository interface {
	// GetActiveItem devuelve la línea activa del par (cliente, producto),
	// o nil si no hay.
	GetActiveItem(customerID, productID int64) (*entity.CartItem, error)
	// GetOwnedActive devuelve la línea activa si pertenece al cliente,
	// o nil si no existe o no es suya.
	GetOwnedActive(itemID, customerID int64) (*entity.CartItem, error)
	// Insert crea una línea activa y asigna su ID.
	Insert(item *entity.CartItem) error
	// UpdateQuantity fija la cantidad de una línea.
	UpdateQuantity(itemID, quantity int64) error
	// Deactivate marca activo=false en la línea del cliente.
	// Devuelve false si no había fila activa que desactivar.
	Deactivate(itemID, customerID int64) (bool, error)
	// DeactivateAll vacía el carrito del cliente. Devuelve filas afectadas.
	DeactivateAll(customerID int64) (int64, error)
	// ListByCustomer devuelve las líneas activas con producto y stock vivo,
	// ocultando productos inactivos, lo más reciente primero.
	ListByCustomer(customerID int64) ([]*entity.CartItemView, error)
}
