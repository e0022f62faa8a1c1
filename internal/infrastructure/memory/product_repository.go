package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	h handle
}

// GetByID devuelve una copia del producto o (nil, nil).
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	r.h.read(func(st *state) {
		if p, ok := st.products[id]; ok {
			out = cloneProduct(p)
		}
	})
	return out, nil
}

// GetForUpdate equivale a GetByID: dentro de RunSale ya no hay escritores concurrentes.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// ApplyPatch aplica el patch. Igual que el CHECK de la tabla, rechaza stock negativo.
func (r *ProductRepo) ApplyPatch(_ context.Context, id int64, patch entity.ProductPatch) error {
	if err := r.h.store.fault(OpApplyPatch); err != nil {
		return err
	}
	return r.h.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return fmt.Errorf("update product %d: no encontrado", id)
		}
		next := cloneProduct(p)
		patch.Apply(next, r.h.store.now())
		if next.Stock < 0 {
			return fmt.Errorf("update product %d: stock negativo", id)
		}
		st.products[id] = next
		return nil
	})
}

// Create agrega un producto con ID autoincremental (semillas y tests).
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.h.write(func(st *state) error {
		for _, existing := range st.products {
			if existing.Code == p.Code || existing.Name == p.Name {
				return fmt.Errorf("insert product: código o nombre duplicado")
			}
		}
		st.nextProductID++
		p.ID = st.nextProductID
		now := r.h.store.now()
		p.CreatedAt, p.UpdatedAt = now, now
		st.products[p.ID] = cloneProduct(p)
		return nil
	})
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	r.h.read(func(st *state) {
		for _, id := range sortedProductIDs(st.products) {
			out = append(out, cloneProduct(st.products[id]))
		}
	})
	return out, nil
}
