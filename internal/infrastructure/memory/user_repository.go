package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	h handle
}

// FindByUsernameWithProfile busca por username exacto.
func (r *UserRepo) FindByUsernameWithProfile(_ context.Context, username string) (*entity.UserWithProfile, error) {
	var out *entity.UserWithProfile
	r.h.read(func(st *state) {
		for _, u := range st.users {
			if u.Username != username {
				continue
			}
			p, ok := st.profiles[u.ProfileID]
			if !ok {
				return
			}
			out = &entity.UserWithProfile{User: *u, Profile: *p}
			return
		}
	})
	return out, nil
}

// ListPermissionCodes devuelve los códigos del perfil ordenados.
func (r *UserRepo) ListPermissionCodes(_ context.Context, profileID int64) ([]string, error) {
	var codes []string
	r.h.read(func(st *state) {
		for _, permID := range st.profilePerms[profileID] {
			if p, ok := st.permissions[permID]; ok {
				codes = append(codes, p.Code)
			}
		}
	})
	sort.Strings(codes)
	return codes, nil
}

// Create persiste un usuario; username y email son únicos.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.profiles[user.ProfileID]; !ok {
			return fmt.Errorf("insert user: perfil %d inexistente", user.ProfileID)
		}
		for _, u := range st.users {
			if u.Username == user.Username || u.Email == user.Email {
				return fmt.Errorf("usuario duplicado: %w", domain.ErrInvalidInput)
			}
		}
		cp := *user
		st.users[user.ID] = &cp
		return nil
	})
}

// GetProfileByName devuelve (nil, nil) si no existe.
func (r *UserRepo) GetProfileByName(_ context.Context, name string) (*entity.Profile, error) {
	var out *entity.Profile
	r.h.read(func(st *state) {
		for _, p := range st.profiles {
			if p.Name == name {
				cp := *p
				out = &cp
				return
			}
		}
	})
	return out, nil
}

// SetUserActive activa o desactiva un usuario (tests y administración).
func (r *UserRepo) SetUserActive(_ context.Context, userID string, active bool) error {
	return r.h.write(func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("usuario %s no encontrado", userID)
		}
		u.IsActive = active
		return nil
	})
}

// SetProfileActive activa o desactiva un perfil.
func (r *UserRepo) SetProfileActive(_ context.Context, profileID int64, active bool) error {
	return r.h.write(func(st *state) error {
		p, ok := st.profiles[profileID]
		if !ok {
			return fmt.Errorf("perfil %d no encontrado", profileID)
		}
		p.IsActive = active
		return nil
	})
}
