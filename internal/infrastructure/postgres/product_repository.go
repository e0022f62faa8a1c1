package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category_id, code, stock, price, cost, tax, is_active,
	created_at, updated_at, COALESCE(created_by, ''), COALESCE(updated_by, '')`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.Code, &p.Stock, &p.Price, &p.Cost, &p.TaxRate, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// ApplyPatch actualiza solo las columnas presentes en el patch, más updated_by/updated_at.
func (r *ProductRepo) ApplyPatch(ctx context.Context, id int64, patch entity.ProductPatch) error {
	sets := make([]string, 0, 10)
	args := []any{id}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}
	if patch.Code != nil {
		set("code", *patch.Code)
	}
	if patch.Stock != nil {
		set("stock", *patch.Stock)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Cost != nil {
		set("cost", *patch.Cost)
	}
	if patch.TaxRate != nil {
		set("tax", *patch.TaxRate)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}
	set("updated_by", nullIfEmpty(patch.UpdatedBy))
	sets = append(sets, "updated_at = now()")

	query := `UPDATE products SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product %d: sin filas", id)
	}
	return nil
}

// upsertProductSQL: el stock solo se escribe al insertar. En conflicto se conservan las existencias,
// que únicamente descuenta la transacción de venta.
const upsertProductSQL = `
		INSERT INTO products (name, category_id, code, stock, price, cost, tax, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name, price = EXCLUDED.price,
			cost = EXCLUDED.cost, tax = EXCLUDED.tax, is_active = EXCLUDED.is_active,
			updated_by = EXCLUDED.updated_by, updated_at = now()
		RETURNING id, (xmax = 0)`

// Upsert inserta el producto con su stock inicial o, si el código ya existe, actualiza nombre,
// precios, tasa y estado sin tocar el stock. Devuelve true si la fila fue insertada.
func (r *ProductRepo) Upsert(ctx context.Context, p *entity.Product) (bool, error) {
	var inserted bool
	err := r.q.QueryRow(ctx, upsertProductSQL,
		p.Name, p.CategoryID, p.Code, p.Stock, p.Price, p.Cost, p.TaxRate, p.IsActive, nullIfEmpty(p.CreatedBy),
	).Scan(&p.ID, &inserted)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("upsert product %q: nombre duplicado: %w", p.Code, err)
		}
		return false, fmt.Errorf("upsert product: %w", err)
	}
	return inserted, nil
}
