package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/misk/misk-api/internal/pkg/email"
	"github.com/misk/misk-api/internal/pkg/errorhandler"
	"github.com/misk/misk-api/internal/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Attempt records one transport call.
type Attempt struct {
	Transport string
	Skipped   bool
	Err       error
}

// Result is the outcome of a dispatch. Transport names the channel that
// delivered, empty when nothing did.
type Result struct {
	Delivered bool
	Transport string
	Attempts  []Attempt
}

// Dispatcher sends booking notices through a primary transport and falls
// back to a secondary one.
type Dispatcher struct {
	primary   Transport
	secondary Transport
	recipient Recipient
	timeout   time.Duration
}

// NewDispatcher creates dispatcher. Either transport may be nil.
func NewDispatcher(primary, secondary Transport, recipient Recipient, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		primary:   primary,
		secondary: secondary,
		recipient: recipient,
		timeout:   timeout,
	}
}

// Channels returns the configured transport names in fallback order.
func (d *Dispatcher) Channels() []string {
	names := []string{}
	for _, t := range []Transport{d.primary, d.secondary} {
		if t != nil {
			names = append(names, t.Name())
		}
	}
	return names
}

// Dispatch renders the notice and tries each transport in turn, each
// bounded by the dispatcher timeout. It never returns an error: failure
// is reported through Result.
func (d *Dispatcher) Dispatch(ctx context.Context, n *BookingNotice) *Result {
	log := logger.FromContext(ctx)
	result := &Result{}

	msg, err := d.render(n)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", n.ID).Msg("Failed to render booking notification")
		return result
	}

	for _, t := range []Transport{d.primary, d.secondary} {
		if t == nil {
			continue
		}

		err := d.send(ctx, t, msg)
		switch {
		case err == nil:
			result.Attempts = append(result.Attempts, Attempt{Transport: t.Name()})
			result.Delivered = true
			result.Transport = t.Name()
			log.Info().
				Int64("booking_id", n.ID).
				Str("transport", t.Name()).
				Msg("Booking notification sent")
			return result
		case errors.Is(err, email.ErrNotConfigured):
			result.Attempts = append(result.Attempts, Attempt{Transport: t.Name(), Skipped: true})
			log.Debug().Str("transport", t.Name()).Msg("Notification transport not configured, skipping")
		default:
			result.Attempts = append(result.Attempts, Attempt{Transport: t.Name(), Err: err})
			errorhandler.LogExternalServiceError(ctx, t.Name(), err)
		}
	}

	log.Error().Int64("booking_id", n.ID).Msg("All notification transports failed")
	return result
}

func (d *Dispatcher) send(ctx context.Context, t Transport, msg *email.EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return t.Send(ctx, msg)
}

func (d *Dispatcher) render(n *BookingNotice) (*email.EmailMessage, error) {
	html, text, err := email.RenderBookingRequest(email.BookingRequestData{
		StudioID:   n.StudioID,
		StudioName: n.StudioName,
		FirstName:  n.FirstName,
		LastName:   n.LastName,
		Email:      n.Email,
		Phone:      n.Phone,
		City:       n.City,
		Message:    n.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("render booking request: %w", err)
	}

	return &email.EmailMessage{
		To:          d.recipient.Email,
		ToName:      d.recipient.Name,
		Subject:     email.BookingRequestSubject(n.StudioName),
		HTMLContent: html,
		TextContent: text,
	}, nil
}
