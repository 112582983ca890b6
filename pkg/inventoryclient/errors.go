package inventoryclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrMissingFields name y qty son obligatorios; la petición no se envía.
	ErrMissingFields = errors.New("inventoryclient: name and quantity are required")
	// ErrSaveRejected el servidor respondió 2xx pero con success:false.
	ErrSaveRejected = errors.New("inventoryclient: save rejected by server")
	// ErrDeleteDeclined el usuario no confirmó la eliminación; no se envió nada.
	ErrDeleteDeclined = errors.New("inventoryclient: delete not confirmed")
	// ErrReloadFailed el alta o la baja se aplicó en el servidor pero la lista no se pudo recargar.
	ErrReloadFailed = errors.New("inventoryclient: change applied but the list could not be refreshed")
	// ErrNoSession no hay sesión guardada.
	ErrNoSession = errors.New("no session, run inventoryctl signin")
)

// APIError respuesta no exitosa del servidor.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	if e.Code == "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsRecoverable indica si vale la pena reintentar: errores de red, timeouts
// por petición, 429 y 5xx. Los 4xx y los errores de decodificación son definitivos.
// La cancelación del contexto del llamador nunca es recuperable.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
