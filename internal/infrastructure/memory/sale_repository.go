package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	h handle
}

// Create inserta la cabecera de la venta.
func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if err := r.h.store.fault(OpCreateSale); err != nil {
		return err
	}
	return r.h.write(func(st *state) error {
		if _, ok := st.sales[sale.ID]; ok {
			return fmt.Errorf("insert sale: id %s duplicado", sale.ID)
		}
		cp := *sale
		st.sales[sale.ID] = &cp
		return nil
	})
}

// CreateDetail inserta una línea; la venta debe existir.
func (r *SaleRepo) CreateDetail(_ context.Context, d *entity.SaleDetail) error {
	if err := r.h.store.fault(OpCreateDetail); err != nil {
		return err
	}
	return r.h.write(func(st *state) error {
		if _, ok := st.sales[d.SaleID]; !ok {
			return fmt.Errorf("insert sale detail: venta %s inexistente", d.SaleID)
		}
		if _, ok := st.products[d.ProductID]; !ok {
			return fmt.Errorf("insert sale detail: producto %d inexistente", d.ProductID)
		}
		st.nextDetailID++
		d.ID = st.nextDetailID
		cp := *d
		st.details = append(st.details, &cp)
		return nil
	})
}

// CreatePayment inserta un pago; la venta y el método deben existir.
func (r *SaleRepo) CreatePayment(_ context.Context, p *entity.SalePayment) error {
	if err := r.h.store.fault(OpCreatePayment); err != nil {
		return err
	}
	return r.h.write(func(st *state) error {
		if _, ok := st.sales[p.SaleID]; !ok {
			return fmt.Errorf("insert sale payment: venta %s inexistente", p.SaleID)
		}
		if _, ok := st.paymentMethods[p.PaymentMethodID]; !ok {
			return fmt.Errorf("insert sale payment: método %d inexistente", p.PaymentMethodID)
		}
		st.nextPaymentID++
		p.ID = st.nextPaymentID
		cp := *p
		st.payments = append(st.payments, &cp)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	r.h.read(func(st *state) {
		if s, ok := st.sales[id]; ok {
			cp := *s
			out = &cp
		}
	})
	return out, nil
}

// GetDetails devuelve las líneas en orden de inserción.
func (r *SaleRepo) GetDetails(_ context.Context, saleID string) ([]*entity.SaleDetail, error) {
	out := []*entity.SaleDetail{}
	r.h.read(func(st *state) {
		for _, d := range st.details {
			if d.SaleID == saleID {
				cp := *d
				out = append(out, &cp)
			}
		}
	})
	return out, nil
}

// GetPayments devuelve los pagos en orden de inserción.
func (r *SaleRepo) GetPayments(_ context.Context, saleID string) ([]*entity.SalePayment, error) {
	out := []*entity.SalePayment{}
	r.h.read(func(st *state) {
		for _, p := range st.payments {
			if p.SaleID == saleID {
				cp := *p
				out = append(out, &cp)
			}
		}
	})
	return out, nil
}

// List filtra y pagina por created_at DESC.
func (r *SaleRepo) List(_ context.Context, f entity.SaleFilter) ([]*entity.Sale, error) {
	matched := r.filter(f)
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	if f.Offset < 0 || f.Offset >= len(matched) {
		return []*entity.Sale{}, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

// Count devuelve el total de ventas que cumplen el filtro.
func (r *SaleRepo) Count(_ context.Context, f entity.SaleFilter) (int, error) {
	return len(r.filter(f)), nil
}

func (r *SaleRepo) filter(f entity.SaleFilter) []*entity.Sale {
	var out []*entity.Sale
	r.h.read(func(st *state) {
		for _, s := range st.sales {
			if f.Status != nil && s.Status != *f.Status {
				continue
			}
			if f.DateFrom != nil && s.CreatedAt.Before(*f.DateFrom) {
				continue
			}
			if f.DateTo != nil && !s.CreatedAt.Before(*f.DateTo) {
				continue
			}
			cp := *s
			out = append(out, &cp)
		}
	})
	return out
}
