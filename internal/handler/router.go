package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quddos/vr-rehab-dashboard/internal/handler/dashboard"
	sessionHandler "github.com/quddos/vr-rehab-dashboard/internal/handler/session"
)

// Store is everything the HTTP surface needs from the session gateway.
type Store interface {
	sessionHandler.Store
	dashboard.Store
}

// NewRouter wires HTTP routes to the session store.
func NewRouter(store Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The Unity headset client and the hosted dashboard run on
	// different origins, so the API stays open to any of them.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         86400,
	}))

	// Create handlers
	sessions := sessionHandler.New(store)
	pages := dashboard.New(store)

	r.Route("/api", func(api chi.Router) {
		sessions.RegisterRoutes(api)
	})

	pages.RegisterRoutes(r)

	return r
}
