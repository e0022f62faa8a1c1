package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	"github.com/jhoicas/puntoventa-api/pkg/jwt"
	"github.com/jhoicas/puntoventa-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens. Secret vacío: login sin token (uso en proceso).
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Hash de relleno para que un usuario inexistente cueste lo mismo que una contraseña incorrecta.
var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("puntoventa-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// AuthUseCase casos de uso de autenticación: login, logout y sesión actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	store    *SessionStore
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, store *SessionStore, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo: userRepo,
		store:    store,
		jwtCfg:   jwtCfg,
		log:      log.Component("auth"),
		now:      time.Now,
	}
}

// NormalizeUsername recorta espacios y aplica NFC para que "José" escrito con o sin
// carácter combinado sea el mismo usuario.
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// Login verifica usuario/contraseña y abre la sesión del proceso.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if _, ok, err := uc.store.Get(ctx); err != nil {
		return nil, err
	} else if ok {
		return nil, domain.ErrAlreadyLogged
	}

	username := NormalizeUsername(in.Username)
	found, err := uc.userRepo.FindByUsernameWithProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if found == nil {
		compareDummy(in.Password)
		uc.log.Info().Str("username", username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.User.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Info().Str("username", username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	if !found.User.IsActive || !found.Profile.IsActive {
		return nil, domain.ErrAccountInactive
	}

	perms, err := uc.userRepo.ListPermissionCodes(ctx, found.Profile.ID)
	if err != nil {
		return nil, err
	}

	session := entity.Session{
		ID:          uuid.NewString(),
		UserID:      found.User.ID,
		Username:    found.User.Username,
		ProfileID:   found.Profile.ID,
		ProfileName: found.Profile.Name,
		Email:       found.User.Email,
		Permissions: perms,
		StartedAt:   uc.now().UTC(),
	}

	var token string
	if uc.jwtCfg.Secret != "" {
		token, err = jwt.Generate(uc.jwtCfg.Secret, session.UserID, session.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.store.Set(ctx, session); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", session.UserID).
		Str("profile", session.ProfileName).
		Int("permissions", len(session.Permissions)).
		Msg("sesión iniciada")

	return &dto.LoginResponse{Session: ToSessionResponse(session), Token: token}, nil
}

// Logout cierra la sesión activa. ErrNotLogged si no hay ninguna.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Clear(ctx); err != nil {
		return err
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}

// GetSession devuelve la sesión activa. ErrNotLogged si no hay ninguna.
func (uc *AuthUseCase) GetSession(ctx context.Context) (*dto.SessionResponse, error) {
	session, ok, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotLogged
	}
	resp := ToSessionResponse(session)
	return &resp, nil
}

// Authenticate valida un token de acceso contra la sesión activa.
// Un token de una sesión anterior (logout o reinicio) devuelve ErrNotLogged.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (entity.Session, error) {
	_, sessionID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return entity.Session{}, domain.ErrNotLogged
	}
	session, ok, err := uc.store.Get(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	if !ok || session.ID != sessionID {
		return entity.Session{}, domain.ErrNotLogged
	}
	return session, nil
}

// ToSessionResponse convierte la sesión a su DTO.
func ToSessionResponse(s entity.Session) dto.SessionResponse {
	perms := s.Permissions
	if perms == nil {
		perms = []string{}
	}
	return dto.SessionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Username:    s.Username,
		ProfileID:   s.ProfileID,
		ProfileName: s.ProfileName,
		Email:       s.Email,
		Permissions: perms,
		StartedAt:   s.StartedAt,
	}
}
