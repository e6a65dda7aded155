package dto

import "time"

// RegisterRequest payload de POST /api/auth/register.
type RegisterRequest struct {
	Usuario    string `json:"usuario"`
	Password   string `json:"password"`
	NombreReal string `json:"nombre_real"`
	Email      string `json:"email"`
}

// LoginRequest payload de POST /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// UserResponse datos públicos de una cuenta (nunca incluye el hash).
type UserResponse struct {
	ID         int64  `json:"id"`
	Usuario    string `json:"usuario"`
	NombreReal string `json:"nombre_real"`
	Email      string `json:"email"`
	Rol        string `json:"rol"`
}

// LoginResponse respuesta de login: usuario + token de sesión.
type LoginResponse struct {
	Mensaje string       `json:"mensaje"`
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
	Expira  time.Time    `json:"expira"`
}

// CheckResponse respuesta de GET /api/auth/check.
type CheckResponse struct {
	Autenticado bool          `json:"autenticado"`
	Usuario     *UserResponse `json:"usuario,omitempty"`
}
