package repository

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios y su perfil (DIP).
type UserRepository interface {
	// FindByUsernameWithProfile devuelve (nil, nil) si el usuario no existe.
	FindByUsernameWithProfile(ctx context.Context, username string) (*entity.UserWithProfile, error)
	// ListPermissionCodes devuelve los códigos de permiso del perfil.
	ListPermissionCodes(ctx context.Context, profileID int64) ([]string, error)
	Create(ctx context.Context, user *entity.User) error
	GetProfileByName(ctx context.Context, name string) (*entity.Profile, error)
}
