package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jacwu/toy-store/internal/config"
)

// Run is the application entry point. It loads configuration, opens the
// configured storage, seeds it if requested and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	return Serve(ctx, cfg, logger)
}

// Serve runs the HTTP server for an already loaded configuration.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	started := time.Now()

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	tracing, err := NewTracing(ctx, cfg.Tracing, Version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	store, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Storage.Seed {
		if _, err := Seed(ctx, logger, store, cfg.Auth.PasswordHashCost); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	api, err := NewAPI(APIDeps{
		Config:   cfg,
		Log:      logger,
		Storage:  store,
		Tracing:  tracing,
		Registry: NewRegistry(),
		Started:  started,
	})
	if err != nil {
		return err
	}
	defer api.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
