package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/adapter/sqlite"
	"github.com/jacwu/toy-store/internal/config"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply the embedded goose migrations for the configured storage driver.

The memory driver has no schema and is rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
		defer cancel()

		if err := migrate(ctx, cfg, logger); err != nil {
			logger.Error("migration failed", slog.String("error", err.Error()))
			return err
		}
		logger.Info("migrations up to date", slog.String("storage", cfg.Storage.Driver))
		return nil
	},
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 5*time.Minute, "overall migration timeout")
}

func migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.Database.DSN, logger)
	case config.DriverSQLite:
		// Open applies migrations before returning.
		db, err := sqlite.Open(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return err
		}
		return db.Close()
	default:
		return fmt.Errorf("storage driver %q has no migrations", cfg.Storage.Driver)
	}
}
