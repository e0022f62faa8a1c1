package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/puntoventa-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|redo|reset]",
	Short:     "Aplica o revierte las migraciones embebidas (goose)",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "version", "redo", "reset"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) == 1 {
		command = args[0]
	}
	ctx := cmd.Context()
	pool, _, log, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	files, err := postgres.MigrationFiles()
	if err != nil {
		return err
	}
	log.Info().Str("command", command).Strs("files", files).Msg("ejecutando migraciones")
	if err := postgres.Migrate(ctx, pool, command); err != nil {
		return err
	}
	log.Info().Str("command", command).Msg("migraciones completadas")
	return nil
}
