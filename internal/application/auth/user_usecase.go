package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// UserUseCase alta de usuarios: CreateUser para la API (users.create) y Bootstrap para posctl.
type UserUseCase struct {
	userRepo repository.UserRepository
	sessions SessionReader
}

// NewUserUseCase construye el caso de uso. sessions puede ser nil si solo se usa Bootstrap.
func NewUserUseCase(userRepo repository.UserRepository, sessions SessionReader) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, sessions: sessions}
}

// CreateUser requiere una sesión con users.create; el usuario queda auditado con el ID de esa sesión.
func (uc *UserUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if uc.sessions == nil {
		return nil, domain.ErrNotLogged
	}
	session, err := RequirePermission(ctx, uc.sessions, entity.PermUsersCreate)
	if err != nil {
		return nil, err
	}
	return uc.create(ctx, in, session.UserID)
}

// Bootstrap crea un usuario sin sesión (administrador inicial, datos de demostración).
// No se expone por HTTP.
func (uc *UserUseCase) Bootstrap(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	return uc.create(ctx, in, "")
}

// create hashea la contraseña con bcrypt y persiste el usuario en el perfil indicado.
func (uc *UserUseCase) create(ctx context.Context, in dto.CreateUserRequest, createdBy string) (*dto.UserResponse, error) {
	username := NormalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.userRepo.GetProfileByName(ctx, in.ProfileName)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("perfil %q: %w", in.ProfileName, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		ProfileID:    profile.ID,
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != "" {
		user.CreatedBy = &createdBy
		user.UpdatedBy = &createdBy
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ProfileID: user.ProfileID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}
