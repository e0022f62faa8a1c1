package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/infrastructure/memory"
)

func nuevoCajero(username string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: username, Email: username + "@tienda.mx", Password: "secreto123",
		FirstName: "Ana", ProfileName: entity.ProfileCashier,
	}
}

func TestCreateUser_RequierePermiso(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedDefaults()
	sessions := auth.NewSessionStore(time.Second)
	uc := auth.NewUserUseCase(store.Users(), sessions)

	_, err := uc.CreateUser(ctx, nuevoCajero("sinsesion"))
	assert.ErrorIs(t, err, domain.ErrNotLogged)

	require.NoError(t, sessions.Set(ctx, entity.Session{
		ID: "s1", UserID: "cajero-id", Username: "cajero1", Permissions: []string{entity.PermSalesCreate},
	}))
	_, err = uc.CreateUser(ctx, nuevoCajero("sinpermiso"))
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	found, err := store.Users().FindByUsernameWithProfile(ctx, "sinpermiso")
	require.NoError(t, err)
	assert.Nil(t, found, "sin permiso no se persiste nada")
}

func TestCreateUser_AuditaConLaSesion(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedDefaults()
	sessions := auth.NewSessionStore(time.Second)
	uc := auth.NewUserUseCase(store.Users(), sessions)

	admin, err := uc.Bootstrap(ctx, dto.CreateUserRequest{
		Username: "admin", Email: "admin@tienda.mx", Password: "secreto123", FirstName: "Luis", ProfileName: entity.ProfileAdmin,
	})
	require.NoError(t, err)
	require.NoError(t, sessions.Set(ctx, entity.Session{
		ID: "s1", UserID: admin.ID, Username: "admin", Permissions: []string{entity.PermUsersCreate},
	}))

	out, err := uc.CreateUser(ctx, nuevoCajero("nuevo"))
	require.NoError(t, err)
	assert.Equal(t, "nuevo", out.Username)

	found, err := store.Users().FindByUsernameWithProfile(ctx, "nuevo")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.User.CreatedBy)
	assert.Equal(t, admin.ID, *found.User.CreatedBy)
	assert.Equal(t, entity.ProfileCashier, found.Profile.Name)
}

func TestCreateUser_SinSessionStore(t *testing.T) {
	store := memory.NewStore()
	store.SeedDefaults()
	uc := auth.NewUserUseCase(store.Users(), nil)

	_, err := uc.CreateUser(context.Background(), nuevoCajero("x1"))
	assert.ErrorIs(t, err, domain.ErrNotLogged)

	out, err := uc.Bootstrap(context.Background(), nuevoCajero("x1"))
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}
