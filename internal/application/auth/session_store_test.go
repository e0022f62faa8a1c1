package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func cashierSession() entity.Session {
	return entity.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		Username:    "cajero",
		ProfileID:   2,
		ProfileName: entity.ProfileCashier,
		Permissions: []string{entity.PermSalesCreate, entity.PermSalesView},
	}
}

func TestSessionStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(time.Second)

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, cashierSession()))
	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "user-1", got.UserID)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_SetNoSobrescribe(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(time.Second)
	require.NoError(t, s.Set(ctx, cashierSession()))

	other := cashierSession()
	other.UserID = "user-2"
	assert.ErrorIs(t, s.Set(ctx, other), domain.ErrAlreadyLogged)

	got, _, _ := s.Get(ctx)
	assert.Equal(t, "user-1", got.UserID)
}

func TestSessionStore_ClearSinSesion(t *testing.T) {
	s := NewSessionStore(time.Second)
	assert.ErrorIs(t, s.Clear(context.Background()), domain.ErrNotLogged)
}

func TestSessionStore_LectoresRecibenCopia(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(time.Second)
	in := cashierSession()
	require.NoError(t, s.Set(ctx, in))

	// Modificar lo que se pasó a Set ni lo que devolvió Get altera el slot.
	in.Permissions[0] = "users.delete"
	got, _, _ := s.Get(ctx)
	got.Permissions[1] = "profiles.manage"

	again, _, _ := s.Get(ctx)
	assert.Equal(t, []string{entity.PermSalesCreate, entity.PermSalesView}, again.Permissions)
}

func TestSessionStore_ContencionDevuelveErrorRecuperable(t *testing.T) {
	s := NewSessionStore(20 * time.Millisecond)
	s.sem <- struct{}{} // candado tomado por otro

	start := time.Now()
	_, _, err := s.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionUnavailable)
	assert.Less(t, time.Since(start), time.Second)

	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindTransient, de.Kind())

	<-s.sem
	_, _, err = s.Get(context.Background())
	assert.NoError(t, err)
}

func TestSessionStore_ContextoCancelado(t *testing.T) {
	s := NewSessionStore(0)
	s.sem <- struct{}{}
	defer func() { <-s.sem }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Set(ctx, cashierSession()), domain.ErrSessionUnavailable)
}

func TestSessionStore_UnSoloLoginConcurrente(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(5 * time.Second)

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess := cashierSession()
			sess.ID = string(rune('a' + i))
			errs <- s.Set(ctx, sess)
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, already int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrAlreadyLogged):
			already++
		default:
			t.Errorf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, already)
}
