package sales

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	domainsales "github.com/jhoicas/puntoventa-api/internal/domain/sales"
)

const dateLayout = "2006-01-02"

// SalesQueryUseCase consultas de solo lectura: métodos de pago y ventas. Requieren sales.view.
type SalesQueryUseCase struct {
	sessions    auth.SessionReader
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentMethodRepository
	productRepo repository.ProductRepository
	loc         *time.Location
}

// NewSalesQueryUseCase construye el caso de uso. loc es la zona en la que se interpretan
// los filtros de fecha (nil = UTC).
func NewSalesQueryUseCase(
	sessions auth.SessionReader,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentMethodRepository,
	productRepo repository.ProductRepository,
	loc *time.Location,
) *SalesQueryUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesQueryUseCase{
		sessions:    sessions,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		loc:         loc,
	}
}

// GetPaymentMethods lista los métodos de pago activos.
func (uc *SalesQueryUseCase) GetPaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	if _, err := auth.RequirePermission(ctx, uc.sessions, entity.PermSalesView); err != nil {
		return nil, err
	}
	methods, err := uc.paymentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Name: m.Name, SATKey: m.SATKey})
	}
	return out, nil
}

// ListSales devuelve una página de ventas ordenadas de la más reciente a la más antigua.
// date_to incluye todo ese día. date_from posterior a date_to es ErrInvalidInput.
func (uc *SalesQueryUseCase) ListSales(ctx context.Context, in dto.ListSalesRequest) (*dto.ListSalesResponse, error) {
	if _, err := auth.RequirePermission(ctx, uc.sessions, entity.PermSalesView); err != nil {
		return nil, err
	}
	in.DefaultPage()
	if in.Limit > 100 {
		return nil, domain.ErrInvalidInput
	}
	// (Page-1)*Limit no debe desbordar int.
	if in.Page > math.MaxInt/in.Limit {
		return nil, domain.ErrInvalidInput
	}

	filter := entity.SaleFilter{Status: in.Status, Limit: in.Limit, Offset: (in.Page - 1) * in.Limit}
	var from, to time.Time
	if in.DateFrom != "" {
		d, err := time.ParseInLocation(dateLayout, in.DateFrom, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = d
		filter.DateFrom = &from
	}
	if in.DateTo != "" {
		d, err := time.ParseInLocation(dateLayout, in.DateTo, uc.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = d.AddDate(0, 0, 1)
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}

	totalItems, err := uc.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return &dto.ListSalesResponse{
		Sales: out,
		PageResponse: dto.PageResponse{
			Page:       in.Page,
			Limit:      in.Limit,
			TotalItems: totalItems,
			TotalPages: domainsales.TotalPages(totalItems, in.Limit),
		},
	}, nil
}

// GetSale devuelve la venta con sus líneas y pagos. ErrSaleNotFound si no existe.
func (uc *SalesQueryUseCase) GetSale(ctx context.Context, id string) (*dto.SaleDetailedResponse, error) {
	if _, err := auth.RequirePermission(ctx, uc.sessions, entity.PermSalesView); err != nil {
		return nil, err
	}
	return uc.loadSale(ctx, id)
}

func (uc *SalesQueryUseCase) loadSale(ctx context.Context, id string) (*dto.SaleDetailedResponse, error) {
	// Un ID que no es UUID no puede existir.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSaleNotFound
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	details, err := uc.saleRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.saleRepo.GetPayments(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleDetailedResponse{
		SaleResponse: toSaleResponse(sale),
		TaxTotal:     decimal.Zero,
		Details:      make([]dto.SaleDetailResponse, 0, len(details)),
		Payments:     make([]dto.SalePaymentResponse, 0, len(payments)),
	}
	names := map[int64]string{}
	for _, d := range details {
		name, ok := names[d.ProductID]
		if !ok {
			p, err := uc.productRepo.GetByID(ctx, d.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				name = p.Name
			}
			names[d.ProductID] = name
		}
		resp.TaxTotal = resp.TaxTotal.Add(d.TaxAmount)
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ProductID:   d.ProductID,
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
			TaxRate:     d.TaxRate,
			TaxPercent:  domainsales.TaxPercent(d.TaxRate),
			TaxAmount:   d.TaxAmount,
			Total:       d.Total,
		})
	}
	for _, p := range payments {
		var name string
		pm, err := uc.paymentRepo.GetByID(ctx, p.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if pm != nil {
			name = pm.Name
		}
		resp.Payments = append(resp.Payments, dto.SalePaymentResponse{
			PaymentMethodID:   p.PaymentMethodID,
			PaymentMethodName: name,
			Amount:            p.Amount,
		})
	}
	return resp, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		Subtotal:  s.Subtotal,
		Total:     s.Total,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		CreatedBy: s.CreatedBy,
		UpdatedBy: s.UpdatedBy,
	}
}
