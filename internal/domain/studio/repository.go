package studio

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines studio data access
type Repository interface {
	List(ctx context.Context) ([]*Studio, error)
	GetByID(ctx context.Context, id string) (*Studio, error)
	Create(ctx context.Context, s *Studio) error
	Update(ctx context.Context, s *Studio) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates studio repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const studioColumns = `id, name, area, category, description, images, equipment, price, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]*Studio, error) {
	query := `SELECT ` + studioColumns + ` FROM studios ORDER BY created_at DESC, id DESC`
	studios := []*Studio{}
	if err := r.db.SelectContext(ctx, &studios, query); err != nil {
		return nil, err
	}
	return studios, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Studio, error) {
	query := `SELECT ` + studioColumns + ` FROM studios WHERE id = $1`
	var s Studio
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Studio) error {
	query := `
		INSERT INTO studios (id, name, area, category, description, images, equipment, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		s.ID, s.Name, s.Area, s.Category, s.Description, s.Images, s.Equipment, s.Price,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *repository) Update(ctx context.Context, s *Studio) error {
	query := `
		UPDATE studios SET
			name = $2, area = $3, category = $4, description = $5,
			images = $6, equipment = $7, price = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		s.ID, s.Name, s.Area, s.Category, s.Description, s.Images, s.Equipment, s.Price,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStudioNotFound
	}
	return err
}

// Delete removes the studio; its bookings go with it (ON DELETE CASCADE).
func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM studios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStudioNotFound
	}
	return nil
}
