package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"max=100"`
	Password string `json:"password" validate:"max=200"`
}

// SessionResponse sesión activa (sin datos sensibles).
type SessionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	ProfileID   int64     `json:"profile_id"`
	ProfileName string    `json:"profile_name"`
	Email       string    `json:"email"`
	Permissions []string  `json:"permissions"`
	StartedAt   time.Time `json:"started_at"`
}

// LoginResponse salida con la sesión y el token de acceso para la API HTTP.
type LoginResponse struct {
	Session SessionResponse `json:"session"`
	Token   string          `json:"token,omitempty"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	ProfileName string `json:"profile_name" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ProfileID int64     `json:"profile_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
