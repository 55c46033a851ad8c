package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/misk/misk-api/internal/pkg/logger"
)

// NotificationOutcome reports whether the operator was reached.
type NotificationOutcome struct {
	Delivered bool
	Transport string
}

// Notifier tells the operator about a persisted booking.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *Booking) NotificationOutcome
}

// EventPublisher pushes persisted bookings to live admin sessions.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, b *Booking) error
}

// SubmitResult is the outcome of a public submission.
type SubmitResult struct {
	Booking      *Booking
	Notification NotificationOutcome
}

// Service handles booking business logic
type Service struct {
	repo      Repository
	notifier  Notifier
	publisher EventPublisher
}

// NewService creates booking service. notifier and publisher may be nil.
func NewService(repo Repository, notifier Notifier, publisher EventPublisher) *Service {
	return &Service{repo: repo, notifier: notifier, publisher: publisher}
}

// Submit persists a validated request, then notifies the operator.
// Notification failure never undoes the insert.
func (s *Service) Submit(ctx context.Context, req *CreateBookingRequest) (*SubmitResult, error) {
	b := &Booking{
		StudioID:   req.StudioID,
		StudioName: req.StudioName,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		Message:    sql.NullString{String: req.Message, Valid: req.Message != ""},
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().Int64("booking_id", b.ID).Str("studio_id", b.StudioID).Msg("Booking created")

	// The visitor may disconnect; delivery still runs to completion.
	detached := context.WithoutCancel(ctx)

	result := &SubmitResult{Booking: b}
	if s.notifier != nil {
		result.Notification = s.notifier.NotifyBookingCreated(detached, b)
	}
	if !result.Notification.Delivered {
		log.Warn().Int64("booking_id", b.ID).Msg("Booking saved but operator notification failed")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(detached, b); err != nil {
			log.Warn().Err(err).Int64("booking_id", b.ID).Msg("Failed to publish booking event")
		}
	}

	return result, nil
}

// List returns bookings newest first; limit <= 0 returns all.
func (s *Service) List(ctx context.Context, limit int) ([]*BookingResponse, error) {
	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return toResponses(items), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*BookingResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if d == nil {
		return nil, ErrBookingNotFound
	}
	return ToResponse(d), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return err
		}
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	return nil
}
