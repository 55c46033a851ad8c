package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/response"
	"github.com/misk/misk-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /book (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		if errs := validator.DecodeErrors(err); errs != nil {
			response.ValidationError(w, errs)
			return
		}
		response.BadRequest(w, "Données invalides")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	result, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			response.NotFound(w, "Studio introuvable")
			return
		}
		errorhandler.HandleInternal(r.Context(), w, "booking.submit", err)
		return
	}

	resp := &BookingSubmittedResponse{
		ID:           result.Booking.ID,
		Message:      messageSubmitted,
		Notification: NotificationSent,
	}
	if !result.Notification.Delivered {
		resp.Message = messageDegraded
		resp.Notification = NotificationDegraded
	}
	response.OK(w, resp)
}

// List handles GET /admin/bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), 0)
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, "booking.list", err)
		return
	}
	response.OK(w, items)
}

// GetByID handles GET /admin/bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "booking.get", err)
		return
	}
	response.OK(w, b)
}

// Delete handles DELETE /admin/bookings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "booking.delete", err)
		return
	}
	response.OK(w, map[string]string{"message": "Booking deleted successfully"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ErrBookingNotFound) {
		response.NotFound(w, "Booking not found")
		return
	}
	errorhandler.HandleInternal(r.Context(), w, op, err)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid booking ID")
		return 0, false
	}
	return id, true
}
