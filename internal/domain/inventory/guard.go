package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// ProductReader es la lectura mínima que necesita el guard.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}

// Line es una línea solicitada: producto y cantidad.
type Line struct {
	ProductID int64
	Quantity  int
}

// Check valida todas las líneas contra el estado actual de los productos antes de cualquier mutación.
// Por línea y en orden: producto inexistente, inactivo, cantidad <= 0, stock insuficiente.
// Si un producto se repite, el stock se compara contra la cantidad acumulada.
// No modifica nada; devuelve los productos leídos indexados por ID.
func Check(ctx context.Context, products ProductReader, lines []Line) (map[int64]*entity.Product, error) {
	seen := make(map[int64]*entity.Product, len(lines))
	requested := make(map[int64]int, len(lines))

	for _, l := range lines {
		p, ok := seen[l.ProductID]
		if !ok {
			var err error
			p, err = products.GetByID(ctx, l.ProductID)
			if err != nil {
				return nil, fmt.Errorf("get product %d: %w", l.ProductID, err)
			}
			if p == nil {
				return nil, &domain.ProductError{Err: domain.ErrProductNotFound, ProductID: l.ProductID}
			}
			seen[l.ProductID] = p
		}
		if !p.IsActive {
			return nil, &domain.ProductError{Err: domain.ErrProductInactive, ProductID: p.ID, Name: p.Name}
		}
		if l.Quantity <= 0 {
			return nil, &domain.ProductError{Err: domain.ErrInvalidQuantity, ProductID: p.ID, Name: p.Name}
		}
		requested[l.ProductID] += l.Quantity
		if err := CheckStock(p, requested[l.ProductID]); err != nil {
			return nil, err
		}
	}
	return seen, nil
}

// CheckStock falla con InsufficientStockError si p.Stock < quantity.
func CheckStock(p *entity.Product, quantity int) error {
	if p.Stock < quantity {
		return &domain.InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Available: p.Stock,
			Requested: quantity,
		}
	}
	return nil
}
