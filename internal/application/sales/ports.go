package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error se hace rollback completo; si no, commit.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		paymentRepo repository.PaymentMethodRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptLine línea del ticket, con la tasa ya convertida a porcentaje.
type ReceiptLine struct {
	Quantity    int
	ProductName string
	UnitPrice   decimal.Decimal
	TaxPercent  decimal.Decimal
	Total       decimal.Decimal
}

// ReceiptData todo lo que se imprime en el ticket de una venta.
type ReceiptData struct {
	StoreName     string
	Footer        string
	SaleID        string
	Date          time.Time
	Cashier       string
	Lines         []ReceiptLine
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
}

// ReceiptGenerator genera el ticket en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}
