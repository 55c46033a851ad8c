package notification

import (
	"context"
	"time"

	"github.com/misk/misk-api/internal/pkg/email"
)

// Transport delivers a rendered message to the operator.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg *email.EmailMessage) error
}

// BookingNotice is the booking data carried by notifications and live events.
type BookingNotice struct {
	ID         int64     `json:"id"`
	StudioID   string    `json:"studio_id"`
	StudioName string    `json:"studio_name"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recipient is the operator inbox.
type Recipient struct {
	Email string
	Name  string
}
