package http

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
)

func item(price, rate string) dto.SaleItemRequest {
	return dto.SaleItemRequest{
		ProductID: 1,
		Quantity:  1,
		UnitPrice: decimal.RequireFromString(price),
		TaxRate:   decimal.RequireFromString(rate),
	}
}

func TestValidate_CreateSale(t *testing.T) {
	ok := dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item("10.50", "0.16"), item("0", "0")}, PaymentMethodID: 1}
	assert.NoError(t, validate.Struct(ok))

	neg := dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item("-1", "0.16")}}
	err := validate.Struct(neg)
	require.Error(t, err)
	assert.Equal(t, "items[0].unit_price no puede ser negativo", validationMessage(err))

	rate := dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item("1", "16")}}
	err = validate.Struct(rate)
	require.Error(t, err)
	assert.Equal(t, "items[0].tax_rate debe estar entre 0 y 1", validationMessage(err))
}

func TestValidate_ListSales(t *testing.T) {
	assert.NoError(t, validate.Struct(dto.ListSalesRequest{}))
	assert.NoError(t, validate.Struct(dto.ListSalesRequest{Page: 2, Limit: 100, DateFrom: "2025-01-31"}))

	err := validate.Struct(dto.ListSalesRequest{Limit: 101})
	require.Error(t, err)
	assert.Equal(t, "limit no cumple max=100", validationMessage(err))

	err = validate.Struct(dto.ListSalesRequest{DateTo: "31/01/2025"})
	require.Error(t, err)
	assert.Equal(t, "date_to debe tener formato YYYY-MM-DD", validationMessage(err))
}

func TestValidate_CreateSaleSinTopeDeLineas(t *testing.T) {
	items := make([]dto.SaleItemRequest, 1200)
	for i := range items {
		items[i] = item("1.00", "0.16")
	}
	assert.NoError(t, validate.Struct(dto.CreateSaleRequest{Items: items, PaymentMethodID: 1}))
}
