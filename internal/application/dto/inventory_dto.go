package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// EntradaRequest payload de POST /api/inventario/entrada.
type EntradaRequest struct {
	IDProducto int64 `json:"id_producto"`
	Cantidad   int64 `json:"cantidad"`
}

// SalidaRequest payload de POST /api/inventario/salida.
type SalidaRequest struct {
	IDProducto int64  `json:"id_producto"`
	Cantidad   int64  `json:"cantidad"`
	Referencia string `json:"referencia"`
}

// AjusteRequest payload de PUT /api/inventario/ajustar/:idProducto.
// Puntero para distinguir "fijar en cero" de campo ausente.
type AjusteRequest struct {
	CantidadActual *int64 `json:"cantidad_actual"`
}

// InventoryResponse fila de inventario con datos de producto.
type InventoryResponse struct {
	ID                  int64           `json:"id"`
	IDProducto          int64           `json:"id_producto"`
	Producto            string          `json:"producto"`
	Categoria           string          `json:"categoria"`
	Precio              decimal.Decimal `json:"precio"`
	CantidadActual      int64           `json:"cantidad_actual"`
	CantidadReservada   int64           `json:"cantidad_reservada"`
	UltimaActualizacion time.Time       `json:"ultima_actualizacion"`
}

// ToInventoryResponse convierte la vista de lectura al DTO de salida.
func ToInventoryResponse(d *entity.InventoryDetail) InventoryResponse {
	return InventoryResponse{
		ID:                  d.ID,
		IDProducto:          d.ProductID,
		Producto:            d.ProductName,
		Categoria:           d.CategoryName,
		Precio:              d.Price,
		CantidadActual:      d.Quantity,
		CantidadReservada:   d.Reserved,
		UltimaActualizacion: d.UpdatedAt,
	}
}

// MovementResponse fila del historial de movimientos.
type MovementResponse struct {
	ID         int64     `json:"id"`
	IDProducto int64     `json:"id_producto"`
	Tipo       string    `json:"tipo"`
	Cantidad   int64     `json:"cantidad"`
	Referencia string    `json:"referencia,omitempty"`
	Fecha      time.Time `json:"fecha"`
}

// ToMovementResponse convierte un movimiento al DTO de salida.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		IDProducto: m.ProductID,
		Tipo:       m.Type,
		Cantidad:   m.Quantity,
		Referencia: m.Referencia,
		Fecha:      m.Fecha,
	}
}
