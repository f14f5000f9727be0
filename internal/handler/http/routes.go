package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/public/notes/{id}", h.getPublicNote)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)

		r.Get("/api/folders", h.listFolders)
		r.Post("/api/folders", h.createFolder)
		r.Delete("/api/folders/{id}", h.deleteFolder)

		r.Post("/api/ai/generate", h.generateAI)

		r.Post("/api/study-sessions", h.recordStudySession)
		r.Get("/api/study-sessions/stats", h.getStudyStats)
	})

	return router
}
