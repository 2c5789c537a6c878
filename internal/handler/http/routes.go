package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/notewall/notewall/internal/utils"
)

// Init builds the router.
//
// Public routes handle signup, login, logout and the health probe. Note
// routes and the authenticated user lookup sit behind the session middleware.
// Unmatched paths and unmatched methods both answer 404 with a JSON body,
// matching the catch-all behaviour clients already depend on.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)

	router.NotFound(endpointNotFound)
	router.MethodNotAllowed(endpointNotFound)

	router.Get("/health", h.health)

	router.Group(func(public chi.Router) {
		public.Post("/api/users/signup", h.signUp)
		public.Post("/api/users/login", h.login)
		public.Post("/api/users/logout", h.logout)
	})

	router.Group(func(guarded chi.Router) {
		guarded.Use(h.auth)

		guarded.Get("/api/users", h.currentUser)

		guarded.Route("/api/notes", func(notes chi.Router) {
			notes.Get("/", h.listNotes)
			notes.Post("/", h.createNote)
			notes.Get("/{noteID}", h.getNote)
			notes.Patch("/{noteID}", h.updateNote)
			notes.Delete("/{noteID}", h.deleteNote)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}

func endpointNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, errorResponse{Error: "Endpoint not found"}, http.StatusNotFound)
}
