package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jacwu/toy-store/pkg/ctxutil"
)

// RouteTemplate records the matched mux route template (e.g.
// "/api/toys/{id}") for the logger, metrics and tracing middleware that wrap
// the router. Register it with Router.Use.
func RouteTemplate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				ctxutil.SetRoute(r.Context(), tmpl)
			}
		}
		next.ServeHTTP(w, r)
	})
}
