package equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/response"
	"github.com/misk/misk-api/internal/pkg/validator"
)

// Handler handles equipment HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates equipment handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /equipments and GET /admin/equipments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "equipment.list", err)
		return
	}
	response.OK(w, toResponses(items))
}

// GetByID handles GET /admin/equipments/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "equipment.get", err)
		return
	}
	response.OK(w, ToResponse(e))
}

// Create handles POST /admin/equipments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req EquipmentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		if errs := validator.DecodeErrors(err); errs != nil {
			response.ValidationError(w, errs)
			return
		}
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	req.normalize()
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	e, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "equipment.create", err)
		return
	}
	response.Created(w, ToResponse(e))
}

// Update handles PUT /admin/equipments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req EquipmentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		if errs := validator.DecodeErrors(err); errs != nil {
			response.ValidationError(w, errs)
			return
		}
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	req.normalize()
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	e, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		h.fail(w, r, "equipment.update", err)
		return
	}
	response.OK(w, ToResponse(e))
}

// Delete handles DELETE /admin/equipments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "equipment.delete", err)
		return
	}
	response.OK(w, map[string]string{"message": "Equipment deleted successfully"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ErrEquipmentNotFound) {
		response.NotFound(w, "Equipment not found")
		return
	}
	errorhandler.HandleInternal(r.Context(), w, op, err)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid equipment ID")
		return 0, false
	}
	return id, true
}
