package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación en memoria de PaymentMethodRepository.
type PaymentMethodRepo struct {
	h handle
}

// GetByID devuelve (nil, nil) si no existe.
func (r *PaymentMethodRepo) GetByID(_ context.Context, id int64) (*entity.PaymentMethod, error) {
	var out *entity.PaymentMethod
	r.h.read(func(st *state) {
		if pm, ok := st.paymentMethods[id]; ok {
			cp := *pm
			out = &cp
		}
	})
	return out, nil
}

// ListActive devuelve los métodos activos por ID.
func (r *PaymentMethodRepo) ListActive(_ context.Context) ([]*entity.PaymentMethod, error) {
	out := []*entity.PaymentMethod{}
	r.h.read(func(st *state) {
		for _, pm := range st.paymentMethods {
			if pm.IsActive {
				cp := *pm
				out = append(out, &cp)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create agrega un método de pago (semillas y tests).
func (r *PaymentMethodRepo) Create(_ context.Context, pm *entity.PaymentMethod) error {
	return r.h.write(func(st *state) error {
		st.nextPaymentMethodID++
		pm.ID = st.nextPaymentMethodID
		cp := *pm
		st.paymentMethods[pm.ID] = &cp
		return nil
	})
}

// SetActive activa o desactiva un método de pago.
func (r *PaymentMethodRepo) SetActive(_ context.Context, id int64, active bool) error {
	return r.h.write(func(st *state) error {
		if pm, ok := st.paymentMethods[id]; ok {
			pm.IsActive = active
		}
		return nil
	})
}
