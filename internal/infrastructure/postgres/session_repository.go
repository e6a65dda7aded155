package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persiste sesiones opacas (token servidor) en la tabla sesiones.
type SessionRepo struct {
	q Querier
}

func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

func (r *SessionRepo) Create(s *entity.Session) error {
	query := `
		INSERT INTO sesiones (token, id_cliente, usuario, rol, expira_en, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		s.Token, s.CustomerID, s.Username, s.Role, s.ExpiresAt,
	).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("crear sesión: %w", err)
	}
	return nil
}

// Get devuelve la sesión vigente para el token, o nil si no existe o expiró.
func (r *SessionRepo) Get(token string) (*entity.Session, error) {
	query := `
		SELECT token, id_cliente, usuario, rol, expira_en, fecha_creacion
		FROM sesiones
		WHERE token = $1 AND expira_en > now()`
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&s.Token, &s.CustomerID, &s.Username, &s.Role, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sesión: %w", err)
	}
	return &s, nil
}

// Delete es idempotente: borrar un token inexistente no es error.
func (r *SessionRepo) Delete(token string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sesiones WHERE token = $1`, token); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// DeleteExpired limpia sesiones vencidas y devuelve cuántas borró.
func (r *SessionRepo) DeleteExpired() (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sesiones WHERE expira_en <= now()`)
	if err != nil {
		return 0, fmt.Errorf("limpiar sesiones: %w", err)
	}
	return cmd.RowsAffected(), nil
}
