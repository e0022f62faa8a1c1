package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// RequirePermission devuelve un middleware que exige el código de permiso en la sesión.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalSession).
//
// Comportamiento:
//   - 401 NOT_LOGGED        → no hay sesión en el contexto.
//   - 403 PERMISSION_DENIED → la sesión no incluye el permiso.
//
// Los casos de uso vuelven a comprobar el permiso contra el almacén de sesión.
func RequirePermission(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := GetSession(c)
		if !ok {
			return writeError(c, domain.ErrNotLogged)
		}
		if !session.HasPermission(code) {
			return writeError(c, domain.ErrPermissionDenied)
		}
		return c.Next()
	}
}
