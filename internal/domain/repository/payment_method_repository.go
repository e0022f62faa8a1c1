package repository

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// PaymentMethodRepository define el puerto de lectura de métodos de pago.
type PaymentMethodRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	// ListActive devuelve los métodos activos ordenados por id.
	ListActive(ctx context.Context) ([]*entity.PaymentMethod, error)
}
