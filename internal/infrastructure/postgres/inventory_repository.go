package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la fila de inventario de un producto, o nil si no existe.
func (r *InventoryRepo) Get(productID int64) (*entity.Inventory, error) {
	return r.get(productID, "")
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(productID int64) (*entity.Inventory, error) {
	return r.get(productID, " FOR UPDATE")
}

func (r *InventoryRepo) get(productID int64, suffix string) (*entity.Inventory, error) {
	query := `
		SELECT id, id_producto, cantidad_actual, cantidad_reservada, ultima_actualizacion
		FROM inventario WHERE id_producto = $1` + suffix
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.Reserved, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}

// AddQuantity suma cantidad a la fila, creándola en esa cantidad si no existe.
func (r *InventoryRepo) AddQuantity(productID, quantity int64) error {
	query := `
		INSERT INTO inventario (id_producto, cantidad_actual, cantidad_reservada, ultima_actualizacion)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (id_producto)
		DO UPDATE SET cantidad_actual = inventario.cantidad_actual + EXCLUDED.cantidad_actual,
		              ultima_actualizacion = now()`
	if _, err := r.q.Exec(context.Background(), query, productID, quantity); err != nil {
		return fmt.Errorf("add inventario: %w", err)
	}
	return nil
}

// DiscountIfEnough descuenta solo si alcanza el stock (UPDATE condicional).
// RowsAffected == 0 significa que otro request ganó la carrera o no hay fila.
func (r *InventoryRepo) DiscountIfEnough(productID, quantity int64) (bool, error) {
	query := `
		UPDATE inventario
		SET cantidad_actual = cantidad_actual - $2, ultima_actualizacion = now()
		WHERE id_producto = $1 AND cantidad_actual >= $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, quantity)
	if err != nil {
		return false, fmt.Errorf("descontar inventario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SetQuantity fija cantidad_actual y avanza ultima_actualizacion.
func (r *InventoryRepo) SetQuantity(productID, quantity int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventario SET cantidad_actual = $2, ultima_actualizacion = now() WHERE id_producto = $1`,
		productID, quantity)
	if err != nil {
		return false, fmt.Errorf("set inventario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

const inventoryDetailColumns = `
	i.id, i.id_producto, i.cantidad_actual, i.cantidad_reservada, i.ultima_actualizacion,
	p.nombre AS producto_nombre, p.precio,
	COALESCE(c.nombre, '') AS categoria_nombre`

// ListAll devuelve el inventario completo con datos de producto,
// ordenado por cantidad_actual ascendente (lo más escaso primero).
func (r *InventoryRepo) ListAll() ([]*entity.InventoryDetail, error) {
	query := `
		SELECT ` + inventoryDetailColumns + `
		FROM inventario i
		INNER JOIN productos p ON i.id_producto = p.id
		LEFT JOIN categorias c ON p.id_categoria = c.id
		ORDER BY i.cantidad_actual ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryDetail
	for rows.Next() {
		var d entity.InventoryDetail
		if err := rows.Scan(
			&d.ID, &d.ProductID, &d.Quantity, &d.Reserved, &d.UpdatedAt,
			&d.ProductName, &d.Price, &d.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetDetail devuelve la fila con datos de producto, o nil si no existe.
func (r *InventoryRepo) GetDetail(productID int64) (*entity.InventoryDetail, error) {
	query := `
		SELECT ` + inventoryDetailColumns + `
		FROM inventario i
		INNER JOIN productos p ON i.id_producto = p.id
		LEFT JOIN categorias c ON p.id_categoria = c.id
		WHERE i.id_producto = $1`
	var d entity.InventoryDetail
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&d.ID, &d.ProductID, &d.Quantity, &d.Reserved, &d.UpdatedAt,
		&d.ProductName, &d.Price, &d.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle inventario: %w", err)
	}
	return &d, nil
}
