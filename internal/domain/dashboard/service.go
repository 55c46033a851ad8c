package dashboard

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/misk/misk-api/internal/domain/booking"
)

const latestBookingsLimit = 5

// Stats holds catalog and booking totals
type Stats struct {
	StudiosCount    int `json:"studios_count" db:"studios_count"`
	BookingsCount   int `json:"bookings_count" db:"bookings_count"`
	EquipmentsCount int `json:"equipments_count" db:"equipments_count"`
}

// Overview is the admin dashboard payload
type Overview struct {
	Stats          Stats                      `json:"stats"`
	LatestBookings []*booking.BookingResponse `json:"latest_bookings"`
}

// StatsReader loads totals
type StatsReader interface {
	Stats(ctx context.Context) (*Stats, error)
}

// BookingLister returns the most recent bookings
type BookingLister interface {
	List(ctx context.Context, limit int) ([]*booking.BookingResponse, error)
}

// Repository reads dashboard totals from postgres
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates dashboard repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Stats counts all three tables in one round trip.
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM studios) AS studios_count,
			(SELECT COUNT(*) FROM bookings) AS bookings_count,
			(SELECT COUNT(*) FROM equipments) AS equipments_count
	`)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Service provides dashboard overview
type Service struct {
	stats    StatsReader
	bookings BookingLister
}

// NewService creates dashboard service
func NewService(stats StatsReader, bookings BookingLister) *Service {
	return &Service{stats: stats, bookings: bookings}
}

// Overview returns totals and the latest bookings
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dashboard stats: %w", err)
	}

	latest, err := s.bookings.List(ctx, latestBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("load latest bookings: %w", err)
	}

	return &Overview{Stats: *stats, LatestBookings: latest}, nil
}
