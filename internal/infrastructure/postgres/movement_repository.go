package postgres

import (
	"context"
	"fmt"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo registra y consulta movimientos de inventario (append-only).
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y completa ID y Fecha desde la base.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (id_producto, tipo, cantidad, referencia, fecha)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		m.ProductID, m.Type, m.Quantity, m.Referencia,
	).Scan(&m.ID, &m.Fecha)
	if err != nil {
		return fmt.Errorf("crear movimiento: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
// El id desempata movimientos con la misma fecha (orden de inserción).
func (r *MovementRepo) ListByProduct(productID int64) ([]*entity.Movement, error) {
	query := `
		SELECT id, id_producto, tipo, cantidad, referencia, fecha
		FROM movimientos
		WHERE id_producto = $1
		ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Referencia, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
