package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/puntoventa-api/docs"
	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	"github.com/jhoicas/puntoventa-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/puntoventa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/puntoventa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/puntoventa-api/internal/interfaces/http"
	"github.com/jhoicas/puntoventa-api/pkg/config"
	"github.com/jhoicas/puntoventa-api/pkg/logger"
)

// @title                       Punto de Venta API
// @version                     1.0
// @description                 Sesión, ventas con descuento de inventario y tickets.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido para la API HTTP")
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx := context.Background()

	var (
		userRepo    repository.UserRepository
		productRepo repository.ProductRepository
		paymentRepo repository.PaymentMethodRepository
		saleRepo    repository.SaleRepository
		txRunner    sales.SaleTxRunner
	)
	switch cfg.App.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		store.SeedDefaults()
		if err := bootstrapDemo(ctx, store, log); err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
		userRepo, productRepo, paymentRepo, saleRepo = store.Users(), store.Products(), store.PaymentMethods(), store.Sales()
		txRunner = store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		paymentRepo = postgres.NewPaymentMethodRepository(pool)
		saleRepo = postgres.NewSaleRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	// La sesión es del proceso: una sola por instancia.
	sessions := auth.NewSessionStore(cfg.Session.LockTimeout)
	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	userUC := auth.NewUserUseCase(userRepo, sessions)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, sessions, log)
	queryUC := sales.NewSalesQueryUseCase(sessions, saleRepo, paymentRepo, productRepo, loc)

	// PDF: ticket de venta de 80 mm
	receiptUC := sales.NewReceiptUseCase(queryUC, infrapdf.NewReceiptGenerator(), sales.ReceiptConfig{
		StoreName: cfg.Receipt.StoreName,
		Footer:    cfg.Receipt.Footer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Punto de Venta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CreateSale: createSaleUC,
		SalesQuery: queryUC,
		Receipt:    receiptUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// bootstrapDemo crea el administrador de demostración (POS_ADMIN_PASSWORD) y productos de ejemplo.
func bootstrapDemo(ctx context.Context, store *memory.Store, log *logger.Logger) error {
	password := os.Getenv("POS_ADMIN_PASSWORD")
	if password == "" {
		log.Warn().Msg("modo memoria sin POS_ADMIN_PASSWORD: no se crea usuario administrador")
		return store.SeedDemoProducts(ctx, "")
	}
	admin, err := auth.NewUserUseCase(store.Users(), nil).Bootstrap(ctx, dto.CreateUserRequest{
		Username:    "admin",
		Email:       "admin@localhost",
		Password:    password,
		FirstName:   "Administrador",
		ProfileName: entity.ProfileAdmin,
	})
	if err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("administrador de demostración creado")
	return store.SeedDemoProducts(ctx, admin.ID)
}
