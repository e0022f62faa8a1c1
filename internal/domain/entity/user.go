package entity

import "time"

// User representa un usuario del punto de venta. Pertenece a exactamente un Profile.
type User struct {
	ID           string // UUID
	ProfileID    int64
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca la contraseña plana
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    *string
	UpdatedBy    *string
}

// UserWithProfile es el resultado de la búsqueda de login: usuario + perfil en una sola lectura.
type UserWithProfile struct {
	User    User
	Profile Profile
}
