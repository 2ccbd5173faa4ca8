package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jacwu/toy-store/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
// Metrics is optional; when nil no exposition endpoint is registered.
type Handlers struct {
	Health      *HealthHandler
	ToyTypes    *ToyTypeHandler
	Toys        *ToyHandler
	Comments    *CommentHandler
	Users       *UserHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the route table: probes and metrics at the root, the
// storefront API under /api.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)
	r.Use(middleware.RouteTemplate)

	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle(h.MetricsPath, h.Metrics).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = r.NotFoundHandler
	api.MethodNotAllowedHandler = r.MethodNotAllowedHandler

	api.HandleFunc("/toy-types", h.ToyTypes.List).Methods(http.MethodGet)
	api.HandleFunc("/toy-types", h.ToyTypes.Create).Methods(http.MethodPost)
	api.HandleFunc("/toy-types/{id}", h.ToyTypes.Get).Methods(http.MethodGet)
	api.HandleFunc("/toy-types/{id}", h.ToyTypes.Update).Methods(http.MethodPut)
	api.HandleFunc("/toy-types/{id}", h.ToyTypes.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/toys", h.Toys.List).Methods(http.MethodGet)
	api.HandleFunc("/toys", h.Toys.Create).Methods(http.MethodPost)
	api.HandleFunc("/toys/by-type/{toyTypeId}", h.Toys.ListByType).Methods(http.MethodGet)
	api.HandleFunc("/toys/{id}", h.Toys.Get).Methods(http.MethodGet)
	api.HandleFunc("/toys/{id}", h.Toys.Update).Methods(http.MethodPut)
	api.HandleFunc("/toys/{id}", h.Toys.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/toys/{toyId}/comments", h.Comments.ListByToy).Methods(http.MethodGet)
	api.HandleFunc("/toys/{toyId}/comments", h.Comments.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", h.Comments.Get).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", h.Comments.Update).Methods(http.MethodPut)
	api.HandleFunc("/comments/{id}", h.Comments.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users/register", h.Users.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", h.Users.Login).Methods(http.MethodPost)
	api.HandleFunc("/users", h.Users.List).Methods(http.MethodGet)

	return r
}
