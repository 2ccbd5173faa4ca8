package main

import (
	"github.com/spf13/cobra"

	"github.com/jacwu/toy-store/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. The server stops gracefully on SIGINT or SIGTERM,
waiting up to SERVER_SHUTDOWN_TIMEOUT for in-flight requests.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	return app.Run(cmd.Context())
}
