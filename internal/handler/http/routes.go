package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Everything under /api/keys and /api/records needs
// a bearer token; the owner id is taken from it and never from the request.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/keys", func(r chi.Router) {
			r.Put("/wrapped", h.putWrappedKey)
			r.Get("/wrapped", h.getWrappedKey)
			r.Post("/rotate", h.rotateWrappedKey)
		})

		r.Route("/api/records", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Put("/{id}", h.putRecord)
			r.Get("/{id}", h.getRecord)
			r.Delete("/{id}", h.deleteRecord)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
