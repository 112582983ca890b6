package dto

// ErrorResponse cuerpo de error HTTP. Success siempre es false para que los clientes
// que solo leen {success, error} sigan funcionando.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

// NewError construye un ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// SuccessResponse cuerpo de las mutaciones exitosas.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
