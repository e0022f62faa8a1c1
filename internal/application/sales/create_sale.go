package sales

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/inventory"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	domainsales "github.com/jhoicas/puntoventa-api/internal/domain/sales"
	"github.com/jhoicas/puntoventa-api/pkg/logger"
)

// CreateSaleUseCase registra una venta completa (cabecera, detalle, pago y descuento de stock)
// en una sola transacción.
type CreateSaleUseCase struct {
	txRunner SaleTxRunner
	sessions auth.SessionReader
	log      *logger.Logger
	now      func() time.Time
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner SaleTxRunner, sessions auth.SessionReader, log *logger.Logger) *CreateSaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateSaleUseCase{
		txRunner: txRunner,
		sessions: sessions,
		log:      log.Component("sales"),
		now:      time.Now,
	}
}

type lineAmounts struct {
	subtotal decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal
}

// CreateSale valida y persiste la venta.
//
// Errores de validación (método de pago, productos, stock, totales) se devuelven tal cual y
// no dejan rastro. Cualquier otro fallo dentro de la transacción se reporta como
// domain.ErrTransactionFailed, también sin cambios visibles.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	session, err := auth.RequirePermission(ctx, uc.sessions, entity.PermSalesCreate)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	lines := make([]inventory.Line, len(in.Items))
	amounts := make([]lineAmounts, len(in.Items))
	var subtotal, total decimal.Decimal
	for i, item := range in.Items {
		lines[i] = inventory.Line{ProductID: item.ProductID, Quantity: item.Quantity}
		s, t, tot := domainsales.LineTotals(item.Quantity, item.UnitPrice, item.TaxRate)
		amounts[i] = lineAmounts{subtotal: s, tax: t, total: tot}
		subtotal = subtotal.Add(s)
		total = total.Add(tot)
	}

	saleID := uuid.NewString()
	now := uc.now().UTC()

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		paymentRepo repository.PaymentMethodRepository,
		saleRepo repository.SaleRepository,
	) error {
		pm, err := paymentRepo.GetByID(ctx, in.PaymentMethodID)
		if err != nil {
			return err
		}
		if pm == nil {
			return domain.ErrInvalidPaymentMethod
		}
		if !pm.IsActive {
			return domain.ErrPaymentMethodInactive
		}

		// Bloqueo en orden ascendente de ID: dos ventas con los mismos productos no se cruzan.
		for _, id := range lockOrder(lines) {
			if _, err := productRepo.GetForUpdate(ctx, id); err != nil {
				return err
			}
		}

		if _, err := inventory.Check(ctx, productRepo, lines); err != nil {
			return err
		}
		if !subtotal.Equal(in.Subtotal) || !total.Equal(in.Total) {
			return domain.ErrTotalsMismatch
		}

		sale := &entity.Sale{
			ID:        saleID,
			Subtotal:  in.Subtotal,
			Total:     in.Total,
			Status:    true,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: session.UserID,
			UpdatedBy: session.UserID,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for i, item := range in.Items {
			detail := &entity.SaleDetail{
				SaleID:    saleID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  amounts[i].subtotal,
				TaxRate:   item.TaxRate,
				TaxAmount: amounts[i].tax,
				Total:     amounts[i].total,
			}
			if err := saleRepo.CreateDetail(ctx, detail); err != nil {
				return err
			}

			// Relectura bajo candado: el stock comprometido es el último confirmado.
			p, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return &domain.ProductError{Err: domain.ErrProductNotFound, ProductID: item.ProductID}
			}
			if err := inventory.CheckStock(p, item.Quantity); err != nil {
				return err
			}
			stock := p.Stock - item.Quantity
			if err := productRepo.ApplyPatch(ctx, p.ID, entity.ProductPatch{Stock: &stock, UpdatedBy: session.UserID}); err != nil {
				return err
			}
		}

		return saleRepo.CreatePayment(ctx, &entity.SalePayment{
			SaleID:          saleID,
			PaymentMethodID: pm.ID,
			Amount:          in.Total,
			CreatedAt:       now,
		})
	})
	if err != nil {
		if _, ok := domain.AsError(err); ok {
			uc.log.Info().Err(err).Str("user_id", session.UserID).Msg("venta rechazada")
			return nil, err
		}
		uc.log.Error().Err(err).
			Str("sale_id", saleID).
			Str("user_id", session.UserID).
			Msg("venta revertida")
		return nil, domain.NewTransactionError(err)
	}

	uc.log.Info().
		Str("sale_id", saleID).
		Str("user_id", session.UserID).
		Int("items", len(in.Items)).
		Str("total", in.Total.String()).
		Msg("venta registrada")

	return &dto.CreateSaleResponse{
		SaleID:    saleID,
		Subtotal:  in.Subtotal,
		Total:     in.Total,
		CreatedAt: now,
	}, nil
}

// lockOrder devuelve los IDs distintos de las líneas en orden ascendente.
func lockOrder(lines []inventory.Line) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
