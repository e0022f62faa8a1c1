package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/sales"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"5.5":       "5.50",
		"999.99":    "999.99",
		"1000":      "1,000.00",
		"25000":     "25,000.00",
		"1234567.5": "1,234,567.50",
		"-1500":     "-1,500.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "x", nonEmpty("x", "y"))
	assert.Equal(t, "y", nonEmpty("", "y"))
}

func TestGenerateReceipt(t *testing.T) {
	data := sales.ReceiptData{
		StoreName: "Abarrotes Lupita",
		Footer:    "Vuelva pronto",
		SaleID:    "3f0c8a9e-1111-2222-3333-444455556666",
		Date:      time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Cashier:   "cajero1",
		Lines: []sales.ReceiptLine{
			{Quantity: 2, ProductName: "Coca-Cola 600ml", UnitPrice: decimal.NewFromInt(18), TaxPercent: decimal.NewFromInt(16), Total: decimal.RequireFromString("41.76")},
			{Quantity: 1, ProductName: "Pan Bimbo", UnitPrice: decimal.NewFromInt(45), TaxPercent: decimal.Zero, Total: decimal.NewFromInt(45)},
		},
		Subtotal:      decimal.NewFromInt(81),
		TaxTotal:      decimal.RequireFromString("5.76"),
		Total:         decimal.RequireFromString("86.76"),
		PaymentMethod: "Efectivo",
	}

	out, err := NewReceiptGenerator().GenerateReceipt(context.Background(), data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
