package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the booking form route. limiter guards submissions.
func (h *Handler) PublicRoutes(limiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(limiter).Post("/", h.Submit)
	return r
}

// AdminRoutes returns admin booking routes. stream serves the live feed.
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler, stream http.HandlerFunc) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.List)
	if stream != nil {
		r.Get("/stream", stream)
	}

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Delete("/", h.Delete)
	})

	return r
}
