package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/semcat/semcat/internal/auth"
	"github.com/semcat/semcat/internal/logger"
)

// NewRouter assembles the API routes.
//
// Registration and login are public; everything else under /api requires a
// bearer token. /healthz sits outside the API prefix for probes.
func NewRouter(h *Handlers, tokens auth.Tokens, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(log.Zap))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens))

			r.Post("/classify", h.Classify)
			r.Post("/taxonomy", h.CreateTaxonomyEntry)
			r.Put("/taxonomy/{id}", h.UpdateTaxonomyEntry)
			r.Delete("/taxonomy/{id}", h.DeleteTaxonomyEntry)
		})
	})

	return r
}
