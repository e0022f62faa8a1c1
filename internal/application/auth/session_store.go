package auth

import (
	"context"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// SessionStore guarda la única sesión del proceso.
// Un semáforo de un cupo protege el slot; se toma solo para copiar o comparar en memoria.
// Si el candado no se obtiene dentro de lockTimeout (o el ctx se cancela) devuelve ErrSessionUnavailable.
type SessionStore struct {
	sem         chan struct{}
	session     *entity.Session
	lockTimeout time.Duration
}

// NewSessionStore crea un store vacío. lockTimeout <= 0 espera solo lo que permita el ctx.
func NewSessionStore(lockTimeout time.Duration) *SessionStore {
	return &SessionStore{
		sem:         make(chan struct{}, 1),
		lockTimeout: lockTimeout,
	}
}

func (s *SessionStore) lock(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	default:
	}
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return domain.ErrSessionUnavailable
	}
}

func (s *SessionStore) unlock() { <-s.sem }

// Set guarda la sesión. Nunca sobrescribe: si ya hay una devuelve ErrAlreadyLogged.
func (s *SessionStore) Set(ctx context.Context, session entity.Session) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	if s.session != nil {
		return domain.ErrAlreadyLogged
	}
	c := session.Clone()
	s.session = &c
	return nil
}

// Get devuelve una copia de la sesión; ok es false si no hay sesión.
func (s *SessionStore) Get(ctx context.Context) (entity.Session, bool, error) {
	if err := s.lock(ctx); err != nil {
		return entity.Session{}, false, err
	}
	defer s.unlock()

	if s.session == nil {
		return entity.Session{}, false, nil
	}
	return s.session.Clone(), true, nil
}

// Clear vacía el slot. Devuelve ErrNotLogged si no había sesión.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	if s.session == nil {
		return domain.ErrNotLogged
	}
	s.session = nil
	return nil
}
