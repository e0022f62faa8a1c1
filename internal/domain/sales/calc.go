package sales

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineTotals calcula los importes de una línea con aritmética decimal exacta.
// subtotal = quantity*unitPrice; tax = subtotal*taxRate; total = subtotal+tax.
func LineTotals(quantity int, unitPrice, taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax = subtotal.Mul(taxRate)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// TaxPercent convierte una tasa fraccionaria (0.16) a porcentaje (16). Solo para presentación.
func TaxPercent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}

// TaxRateFromPercent convierte un porcentaje (16) a fracción (0.16).
func TaxRateFromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// TotalPages devuelve ceil(totalItems/limit) con enteros. limit <= 0 devuelve 0.
func TotalPages(totalItems, limit int) int {
	if limit <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}
