package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productWithStockColumns = `
	p.id, p.nombre, p.descripcion, p.precio, p.id_categoria, p.temporada,
	p.imagen_url, p.activo, p.created_at, p.updated_at,
	COALESCE(c.nombre, '') AS categoria_nombre,
	COALESCE(i.cantidad_actual, 0) AS stock`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto (activo por defecto) y asigna su ID.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, id_categoria, temporada, imagen_url, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.Description, p.Price, p.CategoryID, p.Temporada, p.ImagenURL, p.Activo,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene el producto crudo por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, nombre, descripcion, precio, id_categoria, temporada, imagen_url, activo, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.Temporada,
		&p.ImagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetWithStock obtiene el producto con nombre de categoría y stock actual.
func (r *ProductRepo) GetWithStock(id int64) (*entity.ProductWithStock, error) {
	query := `
		SELECT ` + productWithStockColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.id_categoria = c.id
		LEFT JOIN inventario i ON p.id = i.id_producto
		WHERE p.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	p, err := scanProductWithStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto con stock: %w", err)
	}
	return p, nil
}

// List aplica los filtros conjuntivos y ordena por nombre ascendente.
// Temporadas se traduce a un IN; los filtros omitidos no se aplican.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.ProductWithStock, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + productWithStockColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.id_categoria = c.id
		LEFT JOIN inventario i ON p.id = i.id_producto
		WHERE 1=1`)

	var args []any
	pos := 1
	if len(f.Temporadas) > 0 {
		placeholders := make([]string, len(f.Temporadas))
		for i, t := range f.Temporadas {
			placeholders[i] = fmt.Sprintf("$%d", pos)
			args = append(args, t)
			pos++
		}
		sb.WriteString(" AND p.temporada IN (" + strings.Join(placeholders, ",") + ")")
	}
	if f.CategoryID != nil {
		sb.WriteString(fmt.Sprintf(" AND p.id_categoria = $%d", pos))
		args = append(args, *f.CategoryID)
		pos++
	}
	if f.Activo != nil {
		sb.WriteString(fmt.Sprintf(" AND p.activo = $%d", pos))
		args = append(args, *f.Activo)
		pos++
	}
	sb.WriteString(" ORDER BY p.nombre")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithStock
	for rows.Next() {
		p, err := scanProductWithStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos escalares del producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, id_categoria = $5,
		    temporada = $6, imagen_url = $7, activo = $8, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.Temporada, p.ImagenURL, p.Activo,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Deactivate marca activo=false (borrado lógico).
func (r *ProductRepo) Deactivate(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProductWithStock(row pgx.Row) (*entity.ProductWithStock, error) {
	var p entity.ProductWithStock
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.Temporada,
		&p.ImagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.Stock,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
