package entity

import (
	"slices"
	"time"
)

// Session es la identidad autenticada del proceso. Se guarda en el SessionStore
// y los lectores siempre reciben una copia (Clone).
type Session struct {
	ID          string // UUID por login, enlaza los tokens HTTP
	UserID      string
	Username    string
	ProfileID   int64
	ProfileName string
	Email       string
	Permissions []string
	StartedAt   time.Time
}

// HasPermission indica si code está en los permisos de la sesión.
func (s Session) HasPermission(code string) bool {
	return slices.Contains(s.Permissions, code)
}

// Clone devuelve una copia profunda.
func (s Session) Clone() Session {
	c := s
	c.Permissions = slices.Clone(s.Permissions)
	return c
}
