package http

import (
	"context"
	"net/http"
)

// withRequestTimeout cancels the request context after h.requestTimeout.
// Handlers observe the cancellation through their database calls and answer
// through the regular error table.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
