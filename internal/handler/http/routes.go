package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The auth middleware is attached only to the
// protected group; it is the single admission-control gate in front of every
// route that needs an authenticated identity.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.currentUser)
		r.Put("/api/user", h.updateUser)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/me", h.findAllNotes)
		r.Get("/api/notes/{id}", h.findNoteByID)
		r.Patch("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	return router
}
