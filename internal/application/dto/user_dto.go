package dto

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse identidad autenticada (admin o agente), sin credenciales.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse token más la identidad.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
