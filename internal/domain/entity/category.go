package entity

// Category clasifica productos.
type Category struct {
	ID       int64
	Name     string
	IsActive bool
}
