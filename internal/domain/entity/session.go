package entity

import "time"

// Session es una sesión persistida en servidor. El cliente solo guarda el
// token opaco (cookie o Bearer); invalidar la fila cierra la sesión de verdad,
// cosa que un token autofirmado no permite.
// Username y Role viajan en la fila para que los guards no consulten clientes.
type Session struct {
	Token      string // opaco, aleatorio
	CustomerID int64
	Username   string
	Role       string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired indica si la sesión ya venció.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
