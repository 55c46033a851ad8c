package booking

import "time"

// CreateBookingRequest is the public booking form payload.
type CreateBookingRequest struct {
	FirstName  string `json:"prenom" validate:"required,min=2,max=50"`
	LastName   string `json:"nom" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"telephone" validate:"required,min=8,phone"`
	City       string `json:"ville" validate:"required,min=2,max=100"`
	Message    string `json:"message" validate:"required,min=10,max=1000"`
	StudioID   string `json:"studioId" validate:"required"`
	StudioName string `json:"studioNom" validate:"required"`
}

// Notification delivery states reported to the visitor.
const (
	NotificationSent     = "sent"
	NotificationDegraded = "degraded"
)

const (
	messageSubmitted = "Demande de réservation envoyée avec succès"
	messageDegraded  = "Demande de réservation enregistrée. Notre équipe n'a pas pu être notifiée immédiatement, nous vous recontacterons rapidement."
)

// BookingSubmittedResponse is returned by POST /book.
type BookingSubmittedResponse struct {
	ID           int64  `json:"id"`
	Message      string `json:"message"`
	Notification string `json:"notification"`
}

// StudioSummary is the joined studio info shown with a booking.
type StudioSummary struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Area     int64   `json:"area"`
	Price    float64 `json:"price"`
}

// BookingResponse for admin API responses
type BookingResponse struct {
	ID         int64          `json:"id"`
	StudioID   string         `json:"studio_id"`
	StudioName string         `json:"studio_name"`
	Studio     *StudioSummary `json:"studio"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	City       string         `json:"city"`
	Message    *string        `json:"message"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ToResponse converts a joined booking to response. StudioName prefers the
// current studio name and falls back to the submitted snapshot.
func ToResponse(d *BookingDetail) *BookingResponse {
	resp := &BookingResponse{
		ID:         d.ID,
		StudioID:   d.StudioID,
		StudioName: d.StudioName,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Phone:      d.Phone,
		City:       d.City,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Message.Valid {
		resp.Message = &d.Message.String
	}
	if d.StudioCurrentName.Valid {
		resp.StudioName = d.StudioCurrentName.String
		resp.Studio = &StudioSummary{
			Name:     d.StudioCurrentName.String,
			Category: d.StudioCategory.String,
			Area:     d.StudioArea.Int64,
			Price:    d.StudioPrice.Float64,
		}
	}
	return resp
}

func toResponses(items []*BookingDetail) []*BookingResponse {
	out := make([]*BookingResponse, len(items))
	for i, d := range items {
		out[i] = ToResponse(d)
	}
	return out
}
