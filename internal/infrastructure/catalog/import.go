package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// Upserter inserta un producto o actualiza el existente con el mismo código.
type Upserter interface {
	Upsert(ctx context.Context, p *entity.Product) (inserted bool, err error)
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error no queda nada escrito.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(repo Upserter) error) error
}

// ImportResult filas insertadas y actualizadas.
type ImportResult struct {
	Inserted int
	Updated  int
}

// Import carga los productos en una sola transacción, todo o nada.
// by queda como created_by/updated_by (vacío si la carga no se atribuye a un usuario).
func Import(ctx context.Context, runner TxRunner, products []entity.Product, by string) (ImportResult, error) {
	var res ImportResult
	err := runner.RunCatalog(ctx, func(repo Upserter) error {
		res = ImportResult{}
		for i := range products {
			p := products[i]
			p.CreatedBy, p.UpdatedBy = by, by
			inserted, err := repo.Upsert(ctx, &p)
			if err != nil {
				return fmt.Errorf("producto %q: %w", p.Code, err)
			}
			if inserted {
				res.Inserted++
			} else {
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return res, nil
}
