package equipment

import (
	"database/sql"
	"time"
)

// Equipment is a rentable device that studios reference by id.
type Equipment struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
