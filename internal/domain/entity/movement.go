package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// Referencia fija para salidas generadas por un ajuste manual hacia abajo.
const ReferenciaAjusteManual = "AJUSTE MANUAL"

// Movement es una fila del historial de inventario (append-only).
// Quantity siempre es positiva; Type distingue la dirección.
// El id bigserial sirve de número de secuencia para desempatar
// movimientos con la misma fecha.
type Movement struct {
	ID         int64
	ProductID  int64
	Type       string // entrada, salida
	Quantity   int64
	Referencia string // solo salidas; vacío si no aplica
	Fecha      time.Time
}
