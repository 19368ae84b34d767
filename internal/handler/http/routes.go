package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the full middleware chain and every route of
// the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withRecoverer)
	router.Use(withCORS())
	router.Use(withCompression())
	router.Use(h.withRequestTimeout)

	// auth
	router.Post("/sign-up", h.signUp)
	router.Post("/sign-in", h.signIn)
	router.Get("/validate", h.validate)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Patch("/{id}", h.updateUser)
	})

	router.Route("/items", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Get("/{id}", h.getItem)
		r.Post("/", h.createItem)
	})

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Get("/{id}", h.getOrder)
		r.Post("/", h.createOrder)
		r.Delete("/{id}", h.deleteOrder)
	})

	router.Get("/health", h.health)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
