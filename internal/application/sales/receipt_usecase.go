package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// ReceiptConfig datos fijos del ticket.
type ReceiptConfig struct {
	StoreName string
	Footer    string
}

// ReceiptUseCase genera el ticket PDF de una venta registrada.
type ReceiptUseCase struct {
	query     *SalesQueryUseCase
	generator ReceiptGenerator
	cfg       ReceiptConfig
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(query *SalesQueryUseCase, generator ReceiptGenerator, cfg ReceiptConfig) *ReceiptUseCase {
	return &ReceiptUseCase{query: query, generator: generator, cfg: cfg}
}

// GenerateReceipt devuelve el PDF y un nombre de archivo sugerido.
// Requiere sales.view; ErrSaleNotFound si la venta no existe.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, string, error) {
	session, err := auth.RequirePermission(ctx, uc.query.sessions, entity.PermSalesView)
	if err != nil {
		return nil, "", err
	}
	sale, err := uc.query.loadSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}

	data := ReceiptData{
		StoreName: uc.cfg.StoreName,
		Footer:    uc.cfg.Footer,
		SaleID:    sale.ID,
		Date:      sale.CreatedAt.In(uc.query.loc),
		Subtotal:  sale.Subtotal,
		TaxTotal:  sale.TaxTotal,
		Total:     sale.Total,
	}
	if sale.CreatedBy == session.UserID {
		data.Cashier = session.Username
	}
	for _, d := range sale.Details {
		data.Lines = append(data.Lines, ReceiptLine{
			Quantity:    d.Quantity,
			ProductName: d.ProductName,
			UnitPrice:   d.UnitPrice,
			TaxPercent:  d.TaxPercent,
			Total:       d.Total,
		})
	}
	methods := make([]string, 0, len(sale.Payments))
	for _, p := range sale.Payments {
		methods = append(methods, p.PaymentMethodName)
	}
	data.PaymentMethod = strings.Join(methods, ", ")

	pdf, err := uc.generator.GenerateReceipt(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("generar ticket: %w", err)
	}
	return pdf, fmt.Sprintf("ticket-%s.pdf", shortID(sale.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
