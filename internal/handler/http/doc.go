// Package http implements the REST API of go-shop-keeper on top of chi.
//
// Handlers decode the request, call one service and encode its result.
// Failures go through a single classification table in errors_mapper.go,
// which picks the status code (404 or 400) and the public message. Trace ids,
// access logging, CORS, compression and the request timeout are middlewares
// installed in routes.go.
package http
