package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/misk/misk-api/internal/pkg/database"
)

const studioFKConstraint = "bookings_studio_id_fkey"

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	List(ctx context.Context, limit int) ([]*BookingDetail, error)
	GetByID(ctx context.Context, id int64) (*BookingDetail, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const detailSelect = `
	SELECT b.id, b.studio_id, b.studio_name, b.first_name, b.last_name,
		b.email, b.phone, b.city, b.message, b.created_at, b.updated_at,
		s.name AS studio_current_name, s.category AS studio_category,
		s.area AS studio_area, s.price AS studio_price
	FROM bookings b
	LEFT JOIN studios s ON s.id = b.studio_id
`

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (studio_id, studio_name, first_name, last_name, email, phone, city, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		b.StudioID, b.StudioName, b.FirstName, b.LastName, b.Email, b.Phone, b.City, b.Message,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if database.IsForeignKeyViolation(err, studioFKConstraint) {
		return ErrStudioNotFound
	}
	return err
}

// List returns bookings newest first; limit <= 0 returns all of them.
func (r *repository) List(ctx context.Context, limit int) ([]*BookingDetail, error) {
	query := detailSelect + ` ORDER BY b.created_at DESC, b.id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	items := []*BookingDetail{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*BookingDetail, error) {
	var d BookingDetail
	if err := r.db.GetContext(ctx, &d, detailSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}
