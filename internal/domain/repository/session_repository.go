package repository

import "github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"

// SessionRepository puerto de persistencia para sesiones.
type SessionRepository interface {
	// Create persiste una sesión nueva.
	Create(s *entity.Session) error
	// Get devuelve la sesión no vencida para el token, o nil si no hay.
	Get(token string) (*entity.Session, error)
	// Delete elimina la sesión. No es error si el token no existe.
	Delete(token string) error
	// DeleteExpired purga sesiones vencidas. Devuelve filas eliminadas.
	DeleteExpired() (int64, error)
}
