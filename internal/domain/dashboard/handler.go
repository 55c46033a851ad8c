package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates new dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Overview handles GET /admin/dashboard
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "dashboard.overview", err)
		return
	}
	response.OK(w, overview)
}

// Routes returns dashboard routes
func Routes(h *Handler, authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.Overview)

	return r
}
