package repository

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos.
// Dentro de una transacción de venta se usa la versión atada a la tx.
type ProductRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate lee y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// ApplyPatch aplica los campos presentes del patch.
	ApplyPatch(ctx context.Context, id int64, patch entity.ProductPatch) error
}
