package entity

// Profile agrupa permisos; cada usuario tiene uno.
type Profile struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
}

// Perfiles sembrados por las migraciones.
const (
	ProfileAdmin   = "Administrador"
	ProfileCashier = "Cajero"
	ProfileManager = "Gerente"
)
