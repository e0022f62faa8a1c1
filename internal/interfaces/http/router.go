package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *auth.UserUseCase
	CreateSale *sales.CreateSaleUseCase
	SalesQuery *sales.SalesQueryUseCase
	Receipt    *sales.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; el resto requiere Bearer Token de la sesión activa.
	authHandler := NewAuthHandler(deps.AuthUC)
	authMW := AuthMiddleware(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authMW, authHandler.Logout)
	authGroup.Get("/session", authMW, authHandler.Session)

	// Ventas (protegido)
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SalesQuery, deps.Receipt)
	api.Get("/payment-methods", authMW, RequirePermission(entity.PermSalesView), saleHandler.PaymentMethods)
	salesGroup := api.Group("/sales", authMW)
	salesGroup.Post("/", RequirePermission(entity.PermSalesCreate), saleHandler.Create)
	salesGroup.Get("/", RequirePermission(entity.PermSalesView), saleHandler.List)
	salesGroup.Get("/:id", RequirePermission(entity.PermSalesView), saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", RequirePermission(entity.PermSalesView), saleHandler.Receipt)

	// Usuarios
	if deps.UserUC != nil {
		userHandler := NewUserHandler(deps.UserUC)
		api.Post("/users", authMW, RequirePermission(entity.PermUsersCreate), userHandler.Create)
	}
}
