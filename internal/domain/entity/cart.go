package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem es una línea del carrito de un cliente.
// Como mucho una fila activa por (cliente, producto); quitar del carrito
// es borrado lógico (activo=false).
type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int64
	Activo     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CartItemView es la vista de lectura del carrito: línea + producto + stock vivo.
// Subtotal = cantidad × precio, calculado en la consulta.
type CartItemView struct {
	ID          int64
	ProductID   int64
	Quantity    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Temporada   string
	ImagenURL   string
	Stock       int64
	Subtotal    decimal.Decimal
}
