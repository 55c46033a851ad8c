package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes returns admin notification routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/status", h.Status)

	return r
}
