package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa el stock actual de un producto (fila única por producto).
// Quantity nunca baja de cero: las salidas se validan bajo bloqueo de fila y
// se descuentan con UPDATE condicional.
type Inventory struct {
	ID        int64
	ProductID int64
	Quantity  int64 // cantidad_actual
	Reserved  int64 // cantidad_reservada; hoy siempre 0, reservada para un flujo de checkout
	UpdatedAt time.Time
}

// InventoryDetail es la vista de lectura del inventario: fila + datos del producto.
type InventoryDetail struct {
	Inventory
	ProductName  string
	Price        decimal.Decimal
	CategoryName string // vacío si el producto no tiene categoría
}
