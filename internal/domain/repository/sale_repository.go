package repository

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas, detalles y pagos.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateDetail(ctx context.Context, detail *entity.SaleDetail) error
	// CreatePayment admite varias filas por venta; el flujo de venta escribe una.
	CreatePayment(ctx context.Context, payment *entity.SalePayment) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetDetails(ctx context.Context, saleID string) ([]*entity.SaleDetail, error)
	GetPayments(ctx context.Context, saleID string) ([]*entity.SalePayment, error)
	List(ctx context.Context, filter entity.SaleFilter) ([]*entity.Sale, error)
	Count(ctx context.Context, filter entity.SaleFilter) (int, error)
}
