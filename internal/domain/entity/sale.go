package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta. Total = Σ SaleDetail.Total.
type Sale struct {
	ID        string // UUID
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	Status    bool // true = activa
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// SaleDetail es una línea de la venta.
// Subtotal = Quantity*UnitPrice; TaxAmount = Subtotal*TaxRate; Total = Subtotal+TaxAmount.
type SaleDetail struct {
	ID        int64
	SaleID    string
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal // fracción
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// SalePayment registra el cobro de una venta.
type SalePayment struct {
	ID              int64
	SaleID          string
	PaymentMethodID int64
	Amount          decimal.Decimal
	CreatedAt       time.Time
}

// SaleFilter filtra el listado de ventas. Los rangos de fecha son inclusivos por día.
type SaleFilter struct {
	Status   *bool
	DateFrom *time.Time
	DateTo   *time.Time // exclusivo: inicio del día siguiente
	Limit    int
	Offset   int
}
