package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jacwu/toy-store/internal/config"
	"github.com/jacwu/toy-store/internal/seed"
	"github.com/jacwu/toy-store/internal/service/comment"
	"github.com/jacwu/toy-store/internal/service/toy"
	"github.com/jacwu/toy-store/internal/service/toytype"
	"github.com/jacwu/toy-store/internal/service/user"
	"github.com/jacwu/toy-store/internal/transport/middleware"
	"github.com/jacwu/toy-store/internal/transport/rest"
)

// API is the fully wired HTTP handler.
type API struct {
	Handler http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background work owned by the handler chain.
func (a *API) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// APIDeps are the collaborators NewAPI wires together.
// Registry and Tracing are optional.
type APIDeps struct {
	Config   *config.Config
	Log      *slog.Logger
	Storage  *Storage
	Tracing  *Tracing
	Registry *prometheus.Registry
	Started  time.Time
}

// NewAPI builds services, handlers, router and the middleware chain.
func NewAPI(d APIDeps) (*API, error) {
	cfg, log, store := d.Config, d.Log, d.Storage
	verbose := !cfg.App.IsProduction()

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(store, Version, d.Started),
		ToyTypes: rest.NewToyTypeHandler(toytype.NewService(log, store.ToyTypes), log, verbose),
		Toys:     rest.NewToyHandler(toy.NewService(log, store.Toys, store.ToyTypes), log, verbose),
		Comments: rest.NewCommentHandler(comment.NewService(log, store.Comments, store.Toys), log, verbose),
		Users:    rest.NewUserHandler(user.NewService(log, store.Users, cfg.Auth.PasswordHashCost), log, verbose),
	}

	var metrics middleware.Middleware
	if cfg.Metrics.Enabled && d.Registry != nil {
		if err := store.RegisterMetrics(d.Registry, log); err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		metrics = middleware.NewMetrics(d.Registry).Middleware()
		handlers.Metrics = promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{Registry: d.Registry})
		handlers.MetricsPath = cfg.Metrics.Path
	}

	var tracing middleware.Middleware
	if d.Tracing != nil {
		tracing = middleware.Tracing(d.Tracing.Provider, d.Tracing.Propagator)
	}

	api := &API{}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		api.limiter = middleware.NewRateLimiter(cfg.RateLimit)
		limit = api.limiter.Limit()
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP,
		tracing,
		middleware.Logger(log),
		metrics,
		middleware.Recovery(log),
		middleware.SecurityHeaders(cfg.App.IsProduction()),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.BodyLimit(cfg.Server.BodyLimit),
	)
	api.Handler = chain(rest.NewRouter(handlers))

	return api, nil
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Seed loads the embedded demo catalogue into the empty stores of store.
func Seed(ctx context.Context, log *slog.Logger, store *Storage, hashCost int) (seed.Result, error) {
	catalog, err := seed.Default()
	if err != nil {
		return seed.Result{}, err
	}

	users := user.NewService(log, store.Users, hashCost)
	seeder := seed.New(log, seed.Stores{
		ToyTypes: store.ToyTypes,
		Toys:     store.Toys,
		Comments: store.Comments,
		Users:    store.Users,
	}, store.Tx, users.HashPassword)

	return seeder.Apply(ctx, catalog)
}
