package equipment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines equipment data access
type Repository interface {
	List(ctx context.Context) ([]*Equipment, error)
	GetByID(ctx context.Context, id int64) (*Equipment, error)
	Create(ctx context.Context, e *Equipment) error
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id int64) error
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates equipment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const equipmentColumns = `id, name, type, description, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]*Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments ORDER BY created_at DESC, id DESC`
	items := []*Equipment{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE id = $1`
	var e Equipment
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e *Equipment) error {
	query := `
		INSERT INTO equipments (name, type, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query, e.Name, e.Type, e.Description).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *repository) Update(ctx context.Context, e *Equipment) error {
	query := `
		UPDATE equipments SET name = $2, type = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, e.ID, e.Name, e.Type, e.Description).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEquipmentNotFound
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

// NamesByIDs looks up only the requested primary keys.
func (r *repository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.db.QueryxContext(ctx, `SELECT id, name FROM equipments WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
