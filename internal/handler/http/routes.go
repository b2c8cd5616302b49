package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

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
		r.Get("/api/health/", h.health)
	})

	// record routes. Static segments win over the {collection} wildcard,
	// so /api/auth and /api/health never reach the record handlers.
	records := chi.NewRouter()
	records.Use(h.auth)
	records.Get("/", h.pull)
	records.Post("/", h.createRecord)
	records.Put("/{remoteID}", h.updateRecord)
	records.Delete("/{remoteID}", h.deleteRecord)
	records.MethodNotAllowed(CheckHTTPMethod(records))
	router.Mount("/api/{collection}", records)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
