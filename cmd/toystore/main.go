// Command toystore runs the toy store API and its maintenance tasks.
//
// Usage:
//
//	toystore serve      start the HTTP server (default)
//	toystore migrate    apply database migrations for the configured driver
//	toystore seed       load the demo catalogue into empty stores
//	toystore version    print build information
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
