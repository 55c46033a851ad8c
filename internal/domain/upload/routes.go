package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes returns image upload routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Post("/images", h.UploadImages)

	return r
}

// PublicRoutes returns the file serving route
func (h *Handler) PublicRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/*", h.Serve)
	return r
}
