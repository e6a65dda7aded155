package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveProduct    = errors.New("producto no disponible")
)

// InsufficientStockError indica que la cantidad solicitada supera el stock actual.
// El mensaje incluye las unidades disponibles; es lo que ve el cliente final.
type InsufficientStockError struct {
	Disponibles int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Solo hay %d unidades disponibles", e.Disponibles)
}

// IsInsufficientStock extrae el error tipado de stock de una cadena de errores.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var se *InsufficientStockError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
