package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AuthRoutes returns /admin/auth routes. loginLimiter guards credential checks.
func (h *Handler) AuthRoutes(authMiddleware, loginLimiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(loginLimiter).Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	return r
}
