package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para cuentas.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserta la cuenta. Devuelve domain.ErrDuplicate si el username ya existe.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO clientes (username, password_hash, nombre_completo, email, rol, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Username, c.PasswordHash, c.FullName, c.Email, c.Role,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByUsername obtiene la cuenta por username, o nil si no existe.
func (r *CustomerRepo) GetByUsername(username string) (*entity.Customer, error) {
	return r.getBy(`WHERE username = $1`, username)
}

// GetByID obtiene la cuenta por ID, o nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.getBy(`WHERE id = $1`, id)
}

func (r *CustomerRepo) getBy(where string, arg any) (*entity.Customer, error) {
	query := `
		SELECT id, username, password_hash, nombre_completo, email, rol, created_at
		FROM clientes ` + where
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Username, &c.PasswordHash, &c.FullName, &c.Email, &c.Role, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}
