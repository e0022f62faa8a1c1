package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrAlreadyLogged, fiber.StatusConflict},
		{domain.ErrNotLogged, fiber.StatusUnauthorized},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrAccountInactive, fiber.StatusForbidden},
		{domain.ErrPermissionDenied, fiber.StatusForbidden},
		{domain.ErrEmptySale, fiber.StatusUnprocessableEntity},
		{&domain.ProductError{Err: domain.ErrProductInactive, ProductID: 3}, fiber.StatusUnprocessableEntity},
		{&domain.InsufficientStockError{ProductID: 1, Name: "Pan", Available: 1, Requested: 2}, fiber.StatusConflict},
		{domain.NewTransactionError(errors.New("conexión perdida")), fiber.StatusInternalServerError},
		{domain.ErrSessionUnavailable, fiber.StatusServiceUnavailable},
		{domain.ErrSaleNotFound, fiber.StatusNotFound},
		{fmt.Errorf("perfil: %w", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{errors.New("cualquier otra cosa"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestStatusFor_CubreTodosLosCodigos(t *testing.T) {
	codes := []domain.Code{
		domain.CodeAlreadyLogged, domain.CodeNotLogged, domain.CodeInvalidCredentials,
		domain.CodeAccountInactive, domain.CodePermissionDenied, domain.CodeInvalidPaymentMethod,
		domain.CodePaymentMethodInactive, domain.CodeEmptySale, domain.CodeProductNotFound,
		domain.CodeProductInactive, domain.CodeInvalidQuantity, domain.CodeInsufficientStock,
		domain.CodeTransactionFailed, domain.CodeSessionUnavailable, domain.CodeTotalsMismatch,
		domain.CodeSaleNotFound, domain.CodeInvalidInput,
	}
	for _, c := range codes {
		_, ok := statusByCode[c]
		assert.True(t, ok, string(c))
	}
}
