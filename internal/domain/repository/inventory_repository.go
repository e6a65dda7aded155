package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// InventoryRepository puerto de persistencia para el stock actual.
// GetForUpdate y las escrituras deben usarse dentro de una transacción;
// las lecturas de listado pueden ir contra el pool.
type InventoryRepository interface {
	// Get devuelve la fila de inventario, o nil si no existe.
	Get(productID int64) (*entity.Inventory, error)
	// GetForUpdate devuelve la fila bloqueada (SELECT ... FOR UPDATE),
	// o nil si no existe.
	GetForUpdate(productID int64) (*entity.Inventory, error)
	// AddQuantity suma cantidad a la fila, creándola en esa cantidad si no existe.
	AddQuantity(productID, quantity int64) error
	// DiscountIfEnough descuenta solo si cantidad_actual >= quantity.
	// Devuelve false si no alcanzó (o la fila no existe).
	DiscountIfEnough(productID, quantity int64) (bool, error)
	// SetQuantity fija cantidad_actual y avanza ultima_actualizacion.
	// Devuelve false si la fila no existe.
	SetQuantity(productID, quantity int64) (bool, error)
	// ListAll devuelve el inventario completo con datos de producto,
	// ordenado por cantidad_actual ascendente (lo más escaso primero).
	ListAll() ([]*entity.InventoryDetail, error)
	// GetDetail devuelve la fila con datos de producto, o nil si no existe.
	GetDetail(productID int64) (*entity.InventoryDetail, error)
}
