package dto

// ErrorResponse es el cuerpo de toda respuesta de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse es el cuerpo de respuestas de éxito sin payload.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}
