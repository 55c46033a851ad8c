package booking

import (
	"database/sql"
	"time"
)

// Booking is a reservation request left through the public form.
// StudioName is the display name the visitor saw when submitting.
type Booking struct {
	ID         int64          `db:"id"`
	StudioID   string         `db:"studio_id"`
	StudioName string         `db:"studio_name"`
	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Email      string         `db:"email"`
	Phone      string         `db:"phone"`
	City       string         `db:"city"`
	Message    sql.NullString `db:"message"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// BookingDetail is a booking joined with the current studio row.
type BookingDetail struct {
	Booking
	StudioCurrentName sql.NullString  `db:"studio_current_name"`
	StudioCategory    sql.NullString  `db:"studio_category"`
	StudioArea        sql.NullInt64   `db:"studio_area"`
	StudioPrice       sql.NullFloat64 `db:"studio_price"`
}
