package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock nunca es negativo; solo la transacción de venta lo decrementa.
type Product struct {
	ID         int64
	Name       string
	CategoryID *int64
	Code       string          // código único (código de barras o SKU)
	Stock      int
	Price      decimal.Decimal // precio de venta
	Cost       decimal.Decimal
	TaxRate    decimal.Decimal // fracción: 0.16 = 16%
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
	UpdatedBy  string
}

// ProductPatch describe un cambio parcial. Los campos nil no se tocan.
// UpdatedBy es obligatorio: toda modificación queda atribuida a un usuario.
type ProductPatch struct {
	Name       *string
	CategoryID *int64
	Code       *string
	Stock      *int
	Price      *decimal.Decimal
	Cost       *decimal.Decimal
	TaxRate    *decimal.Decimal
	IsActive   *bool
	UpdatedBy  string
}

// Apply copia sobre p los campos presentes en el patch.
func (patch ProductPatch) Apply(p *Product, now time.Time) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.CategoryID != nil {
		id := *patch.CategoryID
		p.CategoryID = &id
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.TaxRate != nil {
		p.TaxRate = *patch.TaxRate
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedBy = patch.UpdatedBy
	p.UpdatedAt = now
}

// IsEmpty indica si el patch no cambia ningún campo de negocio.
func (patch ProductPatch) IsEmpty() bool {
	return patch.Name == nil && patch.CategoryID == nil && patch.Code == nil && patch.Stock == nil &&
		patch.Price == nil && patch.Cost == nil && patch.TaxRate == nil && patch.IsActive == nil
}
