package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo persiste las líneas del carrito. Las líneas se desactivan
// (activo = FALSE), nunca se borran, para conservar el historial.
type CartRepo struct {
	q Querier
}

func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

const cartItemColumns = `id, id_cliente, id_producto, cantidad, activo, fecha_agregado, fecha_actualizacion`

// GetActiveItem busca la línea activa del cliente para un producto, o nil.
func (r *CartRepo) GetActiveItem(customerID, productID int64) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM carrito
		WHERE id_cliente = $1 AND id_producto = $2 AND activo = TRUE`
	return r.getOne(query, customerID, productID)
}

// GetOwnedActive busca la línea activa por id verificando que pertenezca al cliente.
func (r *CartRepo) GetOwnedActive(itemID, customerID int64) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM carrito
		WHERE id = $1 AND id_cliente = $2 AND activo = TRUE`
	return r.getOne(query, itemID, customerID)
}

func (r *CartRepo) getOne(query string, args ...any) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.CustomerID, &it.ProductID, &it.Quantity, &it.Activo, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrito: %w", err)
	}
	return &it, nil
}

// Insert crea una línea activa nueva y completa el ID.
func (r *CartRepo) Insert(item *entity.CartItem) error {
	query := `
		INSERT INTO carrito (id_cliente, id_producto, cantidad, activo, fecha_agregado, fecha_actualizacion)
		VALUES ($1, $2, $3, TRUE, now(), now())
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.CustomerID, item.ProductID, item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insertar en carrito: %w", err)
	}
	return nil
}

// UpdateQuantity reemplaza la cantidad de una línea.
func (r *CartRepo) UpdateQuantity(itemID, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE carrito SET cantidad = $2, fecha_actualizacion = now() WHERE id = $1`,
		itemID, quantity)
	if err != nil {
		return fmt.Errorf("actualizar carrito: %w", err)
	}
	return nil
}

// Deactivate marca la línea como inactiva si pertenece al cliente.
func (r *CartRepo) Deactivate(itemID, customerID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE carrito SET activo = FALSE, fecha_actualizacion = now()
		WHERE id = $1 AND id_cliente = $2 AND activo = TRUE`,
		itemID, customerID)
	if err != nil {
		return false, fmt.Errorf("quitar de carrito: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeactivateAll vacía el carrito del cliente y devuelve cuántas líneas tocó.
func (r *CartRepo) DeactivateAll(customerID int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE carrito SET activo = FALSE, fecha_actualizacion = now()
		WHERE id_cliente = $1 AND activo = TRUE`,
		customerID)
	if err != nil {
		return 0, fmt.Errorf("vaciar carrito: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByCustomer devuelve el carrito del cliente con los datos del producto.
// Las líneas de productos desactivados quedan fuera del resultado.
func (r *CartRepo) ListByCustomer(customerID int64) ([]*entity.CartItemView, error) {
	query := `
		SELECT c.id, c.id_producto, c.cantidad,
		       p.nombre, p.descripcion, p.precio, p.temporada, p.imagen_url,
		       COALESCE(i.cantidad_actual, 0) AS stock,
		       c.cantidad * p.precio AS subtotal
		FROM carrito c
		INNER JOIN productos p ON c.id_producto = p.id AND p.activo = TRUE
		LEFT JOIN inventario i ON i.id_producto = p.id
		WHERE c.id_cliente = $1 AND c.activo = TRUE
		ORDER BY c.id DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listar carrito: %w", err)
	}
	defer rows.Close()

	var list []*entity.CartItemView
	for rows.Next() {
		var v entity.CartItemView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Quantity,
			&v.Name, &v.Description, &v.Price, &v.Temporada, &v.ImagenURL,
			&v.Stock, &v.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan carrito: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
