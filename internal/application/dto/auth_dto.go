package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token y datos básicos del usuario autenticado.
type LoginResponse struct {
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
