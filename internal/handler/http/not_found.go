package http

import "net/http"

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router, so a known path requested with an unregistered
// method looks exactly like an unknown path: 404 {"error":"Not found"}.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
