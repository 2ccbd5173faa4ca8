package ctxutil

import "context"

type routeSlot struct {
	template string
}

const routeKey ctxKey = "route"

// WithRouteSlot reserves a slot for the matched route template. Middleware
// that runs outside the router reads it back after the handler returns.
// An existing slot is kept.
func WithRouteSlot(ctx context.Context) context.Context {
	if _, ok := ctx.Value(routeKey).(*routeSlot); ok {
		return ctx
	}
	return context.WithValue(ctx, routeKey, &routeSlot{})
}

// SetRoute records the matched route template in the slot, if there is one.
func SetRoute(ctx context.Context, template string) {
	if s, ok := ctx.Value(routeKey).(*routeSlot); ok {
		s.template = template
	}
}

// RouteFromCtx returns the recorded route template, or "" when the request
// matched no route.
func RouteFromCtx(ctx context.Context) string {
	if s, ok := ctx.Value(routeKey).(*routeSlot); ok {
		return s.template
	}
	return ""
}
