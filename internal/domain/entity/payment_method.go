package entity

// PaymentMethod es un medio de pago. SATKey es la clave fiscal del catálogo oficial.
type PaymentMethod struct {
	ID       int64
	Name     string
	SATKey   string
	IsActive bool
}
