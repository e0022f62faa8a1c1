package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// Mismo catálogo que la migración 00002_seed.sql.
var seedPermissions = []entity.Permission{
	{Code: entity.PermSalesCreate, Name: "Crear ventas", Module: "sales"},
	{Code: entity.PermSalesView, Name: "Ver ventas", Module: "sales"},
	{Code: entity.PermSalesRefund, Name: "Reembolsar ventas", Module: "sales"},
	{Code: entity.PermSalesCancel, Name: "Cancelar ventas", Module: "sales"},
	{Code: entity.PermProductsView, Name: "Ver productos", Module: "products"},
	{Code: entity.PermProductsCreate, Name: "Crear productos", Module: "products"},
	{Code: entity.PermProductsEdit, Name: "Editar productos", Module: "products"},
	{Code: entity.PermProductsDelete, Name: "Eliminar productos", Module: "products"},
	{Code: entity.PermCategoriesView, Name: "Ver categorías", Module: "categories"},
	{Code: entity.PermCategoriesCreate, Name: "Crear categorías", Module: "categories"},
	{Code: entity.PermCategoriesEdit, Name: "Editar categorías", Module: "categories"},
	{Code: entity.PermCategoriesDelete, Name: "Eliminar categorías", Module: "categories"},
	{Code: entity.PermReportsSales, Name: "Reportes de ventas", Module: "reports"},
	{Code: entity.PermReportsInventory, Name: "Reportes de inventario", Module: "reports"},
	{Code: entity.PermReportsFinancial, Name: "Reportes financieros", Module: "reports"},
	{Code: entity.PermUsersView, Name: "Ver usuarios", Module: "users"},
	{Code: entity.PermUsersCreate, Name: "Crear usuarios", Module: "users"},
	{Code: entity.PermUsersEdit, Name: "Editar usuarios", Module: "users"},
	{Code: entity.PermUsersDelete, Name: "Eliminar usuarios", Module: "users"},
	{Code: entity.PermProfilesView, Name: "Ver perfiles", Module: "profiles"},
	{Code: entity.PermProfilesManage, Name: "Gestionar perfiles", Module: "profiles"},
}

var seedPaymentMethods = []entity.PaymentMethod{
	{Name: "Efectivo", SATKey: "01", IsActive: true},
	{Name: "Tarjeta de Débito", SATKey: "28", IsActive: true},
	{Name: "Tarjeta de Crédito", SATKey: "04", IsActive: true},
	{Name: "Transferencia Electrónica", SATKey: "03", IsActive: true},
}

// SeedDefaults carga permisos, los tres perfiles con sus asignaciones y los métodos de pago.
func (s *Store) SeedDefaults() {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.data
	byCode := map[string]int64{}
	for _, p := range seedPermissions {
		st.nextPermissionID++
		cp := p
		cp.ID = st.nextPermissionID
		st.permissions[cp.ID] = &cp
		byCode[cp.Code] = cp.ID
	}

	addProfile := func(name, desc string, codes []string) {
		st.nextProfileID++
		id := st.nextProfileID
		st.profiles[id] = &entity.Profile{ID: id, Name: name, Description: desc, IsActive: true}
		for _, c := range codes {
			st.profilePerms[id] = append(st.profilePerms[id], byCode[c])
		}
	}

	all := make([]string, 0, len(seedPermissions))
	for _, p := range seedPermissions {
		all = append(all, p.Code)
	}
	addProfile(entity.ProfileAdmin, "Acceso completo al sistema", all)
	addProfile(entity.ProfileCashier, "Registro de ventas", []string{
		entity.PermSalesCreate, entity.PermSalesView, entity.PermProductsView, entity.PermCategoriesView,
	})
	// Gerente: ventas, productos, categorías y reportes (los 15 primeros).
	addProfile(entity.ProfileManager, "Gestión de tienda y reportes", all[:15])

	for _, pm := range seedPaymentMethods {
		st.nextPaymentMethodID++
		cp := pm
		cp.ID = st.nextPaymentMethodID
		st.paymentMethods[cp.ID] = &cp
	}
}

// SeedDemoProducts agrega algunos productos para el modo demo.
func (s *Store) SeedDemoProducts(ctx context.Context, createdBy string) error {
	products := []entity.Product{
		{Name: "Refresco de cola 600ml", Code: "7501055300075", Stock: 48, Price: decimal.RequireFromString("18.50"), Cost: decimal.RequireFromString("12.00"), TaxRate: decimal.RequireFromString("0.16")},
		{Name: "Pan de caja grande", Code: "7501030411215", Stock: 20, Price: decimal.RequireFromString("45.00"), Cost: decimal.RequireFromString("33.00"), TaxRate: decimal.Zero},
		{Name: "Papas fritas 45g", Code: "7501011123588", Stock: 60, Price: decimal.RequireFromString("17.00"), Cost: decimal.RequireFromString("11.20"), TaxRate: decimal.RequireFromString("0.16")},
		{Name: "Leche entera 1L", Code: "7501020515343", Stock: 30, Price: decimal.RequireFromString("27.50"), Cost: decimal.RequireFromString("21.00"), TaxRate: decimal.Zero},
	}
	repo := s.Products()
	for i := range products {
		p := products[i]
		p.IsActive = true
		p.CreatedBy, p.UpdatedBy = createdBy, createdBy
		if err := repo.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
