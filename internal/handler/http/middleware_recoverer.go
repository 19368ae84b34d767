package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// errPanicRecovered is unclassified, so a recovered panic answers 400 "Error".
var errPanicRecovered = errors.New("panic recovered")

// withRecoverer turns a handler panic into a regular error response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			writeError(w, r, fmt.Errorf("%w: %v", errPanicRecovered, rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
