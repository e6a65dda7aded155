package dto

import (
	"github.com/shopspring/decimal"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// AddToCartRequest payload de POST /api/carrito/agregar.
type AddToCartRequest struct {
	IDProducto int64 `json:"id_producto"`
	Cantidad   int64 `json:"cantidad"`
}

// UpdateCartItemRequest payload de PUT /api/carrito/:id.
type UpdateCartItemRequest struct {
	Cantidad int64 `json:"cantidad"`
}

// CartItemResponse línea del carrito con datos de producto y subtotal.
type CartItemResponse struct {
	ID          int64           `json:"id"`
	IDProducto  int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Temporada   string          `json:"temporada"`
	ImagenURL   string          `json:"imagen_url"`
	Cantidad    int64           `json:"cantidad"`
	Stock       int64           `json:"stock"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito completo con totales agregados.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	Total      decimal.Decimal    `json:"total"`
}

// ToCartResponse agrega líneas y totales en un solo DTO.
func ToCartResponse(items []*entity.CartItemView) CartResponse {
	resp := CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:          it.ID,
			IDProducto:  it.ProductID,
			Nombre:      it.Name,
			Descripcion: it.Description,
			Precio:      it.Price,
			Temporada:   it.Temporada,
			ImagenURL:   it.ImagenURL,
			Cantidad:    it.Quantity,
			Stock:       it.Stock,
			Subtotal:    it.Subtotal,
		})
		resp.TotalItems += it.Quantity
		resp.Total = resp.Total.Add(it.Subtotal)
	}
	return resp
}
