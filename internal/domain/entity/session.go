package entity

// Session registro de sesión guardado del lado del cliente (cookie o archivo local).
// Su ausencia significa "no autenticado".
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

// Access capacidad derivada de la sesión. Enumeración cerrada: solo Viewer o Admin.
type Access uint8

const (
	AccessViewer Access = iota
	AccessAdmin
)

// AccessFor deriva la capacidad una sola vez a partir de la sesión.
// Sesión nula o con un rol distinto de "admin" es de solo lectura.
func AccessFor(s *Session) Access {
	if s != nil && s.Role == RoleAdmin {
		return AccessAdmin
	}
	return AccessViewer
}

// AccessForRole igual que AccessFor pero desde el rol crudo de un token.
func AccessForRole(role string) Access {
	return AccessFor(&Session{Role: role})
}

// CanWrite indica si la capacidad permite crear y eliminar artículos.
func (a Access) CanWrite() bool { return a == AccessAdmin }

func (a Access) String() string {
	if a == AccessAdmin {
		return "admin"
	}
	return "viewer"
}
