package entity

// Permission es un derecho nombrado por un código estable "modulo.accion".
type Permission struct {
	ID          int64
	Code        string
	Name        string
	Module      string
	Description string
}

// Códigos de permiso conocidos.
const (
	PermSalesCreate = "sales.create"
	PermSalesView   = "sales.view"
	PermSalesRefund = "sales.refund"
	PermSalesCancel = "sales.cancel"

	PermProductsView   = "products.view"
	PermProductsCreate = "products.create"
	PermProductsEdit   = "products.edit"
	PermProductsDelete = "products.delete"

	PermCategoriesView   = "categories.view"
	PermCategoriesCreate = "categories.create"
	PermCategoriesEdit   = "categories.edit"
	PermCategoriesDelete = "categories.delete"

	PermReportsSales     = "reports.sales"
	PermReportsInventory = "reports.inventory"
	PermReportsFinancial = "reports.financial"

	PermUsersView   = "users.view"
	PermUsersCreate = "users.create"
	PermUsersEdit   = "users.edit"
	PermUsersDelete = "users.delete"

	PermProfilesView   = "profiles.view"
	PermProfilesManage = "profiles.manage"
)
