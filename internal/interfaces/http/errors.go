package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// statusByCode traduce cada código de dominio a su estado HTTP.
var statusByCode = map[domain.Code]int{
	domain.CodeAlreadyLogged:         fiber.StatusConflict,
	domain.CodeNotLogged:             fiber.StatusUnauthorized,
	domain.CodeInvalidCredentials:    fiber.StatusUnauthorized,
	domain.CodeAccountInactive:       fiber.StatusForbidden,
	domain.CodePermissionDenied:      fiber.StatusForbidden,
	domain.CodeInvalidPaymentMethod:  fiber.StatusUnprocessableEntity,
	domain.CodePaymentMethodInactive: fiber.StatusUnprocessableEntity,
	domain.CodeEmptySale:             fiber.StatusUnprocessableEntity,
	domain.CodeProductNotFound:       fiber.StatusUnprocessableEntity,
	domain.CodeProductInactive:       fiber.StatusUnprocessableEntity,
	domain.CodeInvalidQuantity:       fiber.StatusUnprocessableEntity,
	domain.CodeInsufficientStock:     fiber.StatusConflict,
	domain.CodeTransactionFailed:     fiber.StatusInternalServerError,
	domain.CodeSessionUnavailable:    fiber.StatusServiceUnavailable,
	domain.CodeTotalsMismatch:        fiber.StatusUnprocessableEntity,
	domain.CodeSaleNotFound:          fiber.StatusNotFound,
	domain.CodeInvalidInput:          fiber.StatusBadRequest,
}

// StatusFor devuelve el estado HTTP de un error de dominio (500 si no es de dominio).
func StatusFor(err error) int {
	if de, ok := domain.AsError(err); ok {
		if status, found := statusByCode[de.Code]; found {
			return status
		}
	}
	return fiber.StatusInternalServerError
}

// writeError responde con el código de dominio y su mensaje. Los errores de
// infraestructura no exponen su detalle.
func writeError(c *fiber.Ctx, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
	return c.Status(StatusFor(err)).JSON(dto.ErrorResponse{Code: string(de.Code), Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// ErrorHandler manejador global de Fiber: errores de Fiber con su estado, el resto por writeError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
