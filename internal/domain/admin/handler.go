package admin

import (
	"errors"
	"net/http"

	"github.com/misk/misk-api/internal/middleware"
	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/response"
	"github.com/misk/misk-api/internal/pkg/validator"
)

// Handler handles admin session endpoints
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /admin/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.FromContext(r.Context()).Warn().
				Str("ip", middleware.ClientIP(r)).
				Msg("Admin login rejected")
			response.Unauthorized(w, "Invalid username or password")
			return
		}
		errorhandler.HandleInternal(r.Context(), w, "admin.login", err)
		return
	}

	logger.FromContext(r.Context()).Info().Str("ip", middleware.ClientIP(r)).Msg("Admin logged in")
	response.OK(w, session)
}

// Logout handles POST /admin/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), middleware.GetClaims(r.Context())); err != nil {
		errorhandler.HandleInternal(r.Context(), w, "admin.logout", err)
		return
	}
	response.OK(w, map[string]string{"message": "Logged out"})
}

// Me handles GET /admin/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	resp := MeResponse{Username: claims.Subject}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	response.OK(w, resp)
}
