package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	apphttp "github.com/jhoicas/puntoventa-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testToken  = "token-valido"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

// fakeAuthenticator acepta solo testToken y devuelve una sesión con los permisos indicados.
type fakeAuthenticator struct {
	perms []string
	err   error
}

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (entity.Session, error) {
	if f.err != nil {
		return entity.Session{}, f.err
	}
	if token != testToken {
		return entity.Session{}, domain.ErrNotLogged
	}
	return entity.Session{ID: "sess-1", UserID: testUserID, Username: "cajero1", Permissions: f.perms}, nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el token y cargar la sesión
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(authn fakeAuthenticator, permission string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(authn),
		apphttp.RequirePermission(permission),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ConPermiso_Pasa(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{perms: []string{entity.PermSalesCreate}}, entity.PermSalesCreate)
	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
}

func TestRequirePermission_SinPermiso_Retorna403(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{perms: []string{entity.PermSalesView}}, entity.PermSalesCreate)
	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "PERMISSION_DENIED")
}

func TestRequirePermission_SinSesionEnContexto_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/x", apphttp.RequirePermission(entity.PermSalesView), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "NOT_LOGGED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{}, entity.PermSalesView)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{}, entity.PermSalesView)
	resp := doRequest(t, app, "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenDeSesionCerrada_Retorna401(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{}, entity.PermSalesView)
	resp := doRequest(t, app, "Bearer token.de.otra.sesion")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "NOT_LOGGED")
}

func TestAuthMiddleware_SesionOcupada_Retorna503(t *testing.T) {
	app := buildTestApp(fakeAuthenticator{err: domain.ErrSessionUnavailable}, entity.PermSalesView)
	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "SESSION_UNAVAILABLE")
}

func TestAuthMiddleware_CargaSesion(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(fakeAuthenticator{perms: []string{"a"}}), func(c *fiber.Ctx) error {
		s, ok := apphttp.GetSession(c)
		return c.JSON(fiber.Map{"ok": ok, "session_id": s.ID, "user_id": apphttp.GetUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "sess-1", body["session_id"])
	assert.Equal(t, testUserID, body["user_id"])
}
