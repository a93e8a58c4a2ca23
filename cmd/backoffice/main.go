package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title Backoffice API
// @version 1.0
// @description Finance back-office: clients, ledger, commissions, payroll, assets, liabilities and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "backoffice",
	Short:         "Finance back-office API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
