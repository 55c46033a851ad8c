package main

import (
	"context"

	"github.com/misk/misk-api/internal/domain/booking"
	"github.com/misk/misk-api/internal/domain/notification"
)

// bookingNotifier adapts notification.Dispatcher to booking.Notifier
type bookingNotifier struct {
	dispatcher *notification.Dispatcher
}

func (a *bookingNotifier) NotifyBookingCreated(ctx context.Context, b *booking.Booking) booking.NotificationOutcome {
	res := a.dispatcher.Dispatch(ctx, toNotice(b))
	return booking.NotificationOutcome{Delivered: res.Delivered, Transport: res.Transport}
}

// bookingPublisher adapts notification.Hub to booking.EventPublisher
type bookingPublisher struct {
	hub *notification.Hub
}

func (a *bookingPublisher) PublishBookingCreated(ctx context.Context, b *booking.Booking) error {
	return a.hub.Publish(ctx, &notification.Event{
		Type:    notification.EventBookingCreated,
		Booking: toNotice(b),
	})
}

func toNotice(b *booking.Booking) *notification.BookingNotice {
	return &notification.BookingNotice{
		ID:         b.ID,
		StudioID:   b.StudioID,
		StudioName: b.StudioName,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Phone:      b.Phone,
		City:       b.City,
		Message:    b.Message.String,
		CreatedAt:  b.CreatedAt,
	}
}
