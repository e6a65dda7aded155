package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// MovementRepository puerto para el historial de movimientos (append-only).
type MovementRepository interface {
	// Create persiste un movimiento y asigna su ID.
	Create(m *entity.Movement) error
	// ListByProduct devuelve los movimientos del producto ordenados por
	// fecha descendente; el id desempata (insertado después, primero).
	ListByProduct(productID int64) ([]*entity.Movement, error)
}
