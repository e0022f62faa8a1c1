package auth

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// SessionReader es la lectura de sesión que necesitan los chequeos de permiso.
type SessionReader interface {
	Get(ctx context.Context) (entity.Session, bool, error)
}

// RequirePermission devuelve la sesión activa si tiene code.
// ErrNotLogged sin sesión; ErrPermissionDenied si le falta el permiso.
func RequirePermission(ctx context.Context, store SessionReader, code string) (entity.Session, error) {
	session, ok, err := store.Get(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	if !ok {
		return entity.Session{}, domain.ErrNotLogged
	}
	if !session.HasPermission(code) {
		return entity.Session{}, domain.ErrPermissionDenied
	}
	return session, nil
}
