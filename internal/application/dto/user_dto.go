package dto

// SignUpRequest entrada para POST /api/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInRequest entrada para POST /api/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser datos públicos de la sesión.
type SessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SignInResponse salida con el token de sesión firmado.
type SignInResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
	Token   string      `json:"token"`
}

// SignUpResponse respuesta de POST /api/signup; mismo sobre que SignInResponse pero sin token.
type SignUpResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}
