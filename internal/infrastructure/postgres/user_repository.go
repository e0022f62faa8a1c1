package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindByUsernameWithProfile obtiene usuario y perfil en una sola consulta. (nil, nil) si no existe.
func (r *UserRepo) FindByUsernameWithProfile(ctx context.Context, username string) (*entity.UserWithProfile, error) {
	query := `
		SELECT u.id, u.profile_id, u.username, u.email, u.password, u.first_name, u.last_name,
		       u.is_active, u.created_at, u.updated_at, u.created_by, u.updated_by,
		       p.id, p.name, COALESCE(p.description, ''), p.is_active
		FROM users u
		JOIN profiles p ON p.id = u.profile_id
		WHERE u.username = $1`
	var out entity.UserWithProfile
	u, p := &out.User, &out.Profile
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.ProfileID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.CreatedBy, &u.UpdatedBy,
		&p.ID, &p.Name, &p.Description, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &out, nil
}

// ListPermissionCodes devuelve los códigos de permiso asignados al perfil.
func (r *UserRepo) ListPermissionCodes(ctx context.Context, profileID int64) ([]string, error) {
	query := `
		SELECT pm.code
		FROM profile_permissions pp
		JOIN permissions pm ON pm.id = pp.permission_id
		WHERE pp.profile_id = $1
		ORDER BY pm.code`
	rows, err := r.q.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, profile_id, username, email, password, first_name, last_name, is_active,
		                   created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.ProfileID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.IsActive, user.CreatedAt, user.UpdatedAt, user.CreatedBy, user.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("usuario duplicado: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetProfileByName obtiene un perfil por nombre. (nil, nil) si no existe.
func (r *UserRepo) GetProfileByName(ctx context.Context, name string) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), is_active FROM profiles WHERE name = $1`, name,
	).Scan(&p.ID, &p.Name, &p.Description, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
