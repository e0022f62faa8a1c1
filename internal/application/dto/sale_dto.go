package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta. TaxRate es fracción (0.16 = 16%).
type SaleItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"decimal_gte0"`
	TaxRate   decimal.Decimal `json:"tax_rate" validate:"decimal_fraction"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Items           []SaleItemRequest `json:"items" validate:"dive"`
	PaymentMethodID int64             `json:"payment_method_id"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Total           decimal.Decimal   `json:"total"`
}

// CreateSaleResponse resultado de una venta registrada.
type CreateSaleResponse struct {
	SaleID    string          `json:"sale_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentMethodResponse método de pago activo.
type PaymentMethodResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	SATKey string `json:"sat_key"`
}

// ListSalesRequest filtros de GET /api/sales. Fechas en formato YYYY-MM-DD.
type ListSalesRequest struct {
	Status   *bool  `json:"status,omitempty"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=100"`
	DateFrom string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (r *ListSalesRequest) DefaultPage() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
}

// SaleResponse cabecera de venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	Status    bool            `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	CreatedBy string          `json:"created_by"`
	UpdatedBy string          `json:"updated_by"`
}

// ListSalesResponse página de ventas.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
	PageResponse
}

// SaleDetailResponse línea de una venta. TaxPercent es la tasa en porcentaje.
type SaleDetailResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxPercent  decimal.Decimal `json:"tax_percent"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// SalePaymentResponse pago de una venta.
type SalePaymentResponse struct {
	PaymentMethodID   int64           `json:"payment_method_id"`
	PaymentMethodName string          `json:"payment_method_name,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
}

// SaleDetailedResponse venta con detalle y pagos para GET /api/sales/:id.
type SaleDetailedResponse struct {
	SaleResponse
	TaxTotal decimal.Decimal       `json:"tax_total"`
	Details  []SaleDetailResponse  `json:"details"`
	Payments []SalePaymentResponse `json:"payments"`
}
