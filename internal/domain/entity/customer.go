package entity

import "time"

// Roles válidos para Customer.
const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

// Customer representa una cuenta de la tienda (cliente o administrador).
type Customer struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	FullName     string
	Email        string
	Role         string // cliente, admin
	CreatedAt    time.Time
}
