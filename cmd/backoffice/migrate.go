package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/platform/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(migrations.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(migrations.Down)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrations(dir migrations.Direction) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.Info("Running database migrations", slog.String("direction", string(dir)))
	return migrations.Run(slog.Default(), cfg.DatabaseURL, cfg.MigrationsPath, dir)
}
