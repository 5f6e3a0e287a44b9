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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/users", h.register)
		r.Post("/api/v1/auth", h.authenticate)
		r.Delete("/api/v1/all-users", h.deleteAllUsers)
	})

	// routes guarded by a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/v1/users", h.getUser)
		r.Patch("/api/v1/users", h.updateUser)
		r.Delete("/api/v1/users", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
