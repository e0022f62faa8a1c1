package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// GetByID obtiene un método de pago. (nil, nil) si no existe.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	err := r.q.QueryRow(ctx,
		`SELECT id, name, sat_key, is_active FROM payment_methods WHERE id = $1`, id,
	).Scan(&pm.ID, &pm.Name, &pm.SATKey, &pm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &pm, nil
}

// ListActive lista los métodos activos por ID.
func (r *PaymentMethodRepo) ListActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, sat_key, is_active FROM payment_methods WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	list := []*entity.PaymentMethod{}
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name, &pm.SATKey, &pm.IsActive); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}
