package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Temporada por defecto para productos sin etiqueta estacional.
const TemporadaRegular = "regular"

// Product representa un producto de la panadería.
// El stock no vive aquí: se mantiene en Inventory y se deriva vía join.
// activo=false es borrado lógico; nunca se elimina la fila.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	CategoryID  *int64          // nil si no tiene categoría
	Temporada   string          // etiqueta estacional (regular, navidad, ...)
	ImagenURL   string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductWithStock es la vista de lectura: producto + nombre de categoría + stock actual.
type ProductWithStock struct {
	Product
	CategoryName string // vacío si no tiene categoría
	Stock        int64  // 0 si no existe fila de inventario
}
