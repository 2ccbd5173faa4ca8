package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jacwu/toy-store/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalogue",
	Long: `Load the embedded demo catalogue (toy types, toys, comments and the demo
user) into the configured storage. Stores that already hold records are left
untouched, so running it twice is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := app.OpenStorage(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := app.Seed(cmd.Context(), logger, store, cfg.Auth.PasswordHashCost)
		if err != nil {
			logger.Error("seed failed", slog.String("error", err.Error()))
			return err
		}

		logger.Info("seed completed",
			slog.Int("toy_types", res.ToyTypes),
			slog.Int("toys", res.Toys),
			slog.Int("comments", res.Comments),
			slog.Int("users", res.Users),
		)
		return nil
	},
}
