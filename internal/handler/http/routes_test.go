package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

var expectedRoutes = []routeCase{
	{http.MethodPost, "/sign-up"},
	{http.MethodPost, "/sign-in"},
	{http.MethodGet, "/validate"},
	{http.MethodGet, "/users/"},
	{http.MethodGet, "/users/{id}"},
	{http.MethodPatch, "/users/{id}"},
	{http.MethodGet, "/items/"},
	{http.MethodGet, "/items/{id}"},
	{http.MethodPost, "/items/"},
	{http.MethodGet, "/orders/"},
	{http.MethodGet, "/orders/{id}"},
	{http.MethodPost, "/orders/"},
	{http.MethodDelete, "/orders/{id}"},
	{http.MethodGet, "/health"},
}

func TestInit_RegistersEveryRoute(t *testing.T) {
	router := newTestRouter(service.Services{}).(chi.Routes)

	registered := make(map[routeCase]bool)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[routeCase{method, route}] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range expectedRoutes {
		assert.True(t, registered[rc], "route %s %s is not registered", rc.method, rc.path)
	}
}

func TestInit_UnknownRoutes_Return404JSON(t *testing.T) {
	router := newTestRouter(service.Services{})

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/unknown"},
		{"unregistered method on known path", http.MethodPut, "/users/1"},
		{"delete on users", http.MethodDelete, "/users/1"},
		{"patch on items", http.MethodPatch, "/items/1"},
		{"post on validate", http.MethodPost, "/validate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not found", decodeErrorBody(t, rr))
		})
	}
}

func TestInit_EveryResponseCarriesTraceID(t *testing.T) {
	router := newTestRouter(service.Services{})

	for _, path := range []string{"/health", "/unknown", "/users/abc"} {
		rr := doRequest(t, router, http.MethodGet, path, "")
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), path)
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestRouter(service.Services{})

	req := newPreflightRequest("/orders/1", http.MethodDelete)
	rr := serve(router, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}
