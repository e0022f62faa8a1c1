// posctl tareas de operación sobre la base de datos del punto de venta:
// migraciones, alta del administrador inicial e importación del catálogo.
//
// Uso:
//
//	posctl migrate up|down|status
//	posctl create-admin --username admin --email admin@tienda.mx --password ********
//	posctl import-products --file productos.csv [--encoding latin1]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/puntoventa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/puntoventa-api/pkg/config"
	"github.com/jhoicas/puntoventa-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "posctl",
	Short:        "Herramientas de operación del punto de venta",
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(importProductsCmd)
}

// openPool carga la configuración y abre el pool de PostgreSQL.
func openPool(ctx context.Context) (*pgxpool.Pool, *config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("posctl")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, cfg, log, nil
}
