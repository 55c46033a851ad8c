package studio

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/response"
	"github.com/misk/misk-api/internal/pkg/validator"
)

// Handler handles studio HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates studio handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /studios and GET /admin/studios
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	studios, err := h.svc.List(r.Context())
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "studio.list", err)
		return
	}
	response.OK(w, studios)
}

// GetByID handles GET /studios/{id} and GET /admin/studios/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "studio.get", err)
		return
	}
	response.OK(w, st)
}

// Create handles POST /admin/studios
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	st, err := h.svc.Create(r.Context(), req)
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "studio.create", err)
		return
	}
	response.Created(w, st)
}

// Update handles PUT /admin/studios/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	st, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, "studio.update", err)
		return
	}
	response.OK(w, st)
}

// Delete handles DELETE /admin/studios/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "studio.delete", err)
		return
	}
	response.OK(w, map[string]string{"message": "Studio deleted successfully"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ErrStudioNotFound) {
		response.NotFound(w, "Studio not found")
		return
	}
	errorhandler.HandleInternal(r.Context(), w, op, err)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*StudioRequest, bool) {
	var req StudioRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, ErrInvalidPrice) {
			response.ValidationError(w, map[string]string{"price": "Doit être un nombre"})
			return nil, false
		}
		if errs := validator.DecodeErrors(err); errs != nil {
			response.ValidationError(w, errs)
			return nil, false
		}
		response.BadRequest(w, "Invalid JSON body")
		return nil, false
	}

	req.normalize()
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return nil, false
	}
	return &req, true
}
