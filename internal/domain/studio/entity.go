package studio

import (
	"time"

	"github.com/lib/pq"
)

// Category values accepted for a studio.
const (
	CategoryPodcast        = "Podcast"
	CategoryEnregistrement = "Enregistrement"
	CategoryStreaming      = "Streaming"
	CategoryProduction     = "Production"
)

// Studio is a rentable room. Equipment holds equipment ids as strings,
// with no referential integrity.
type Studio struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Area        int            `db:"area"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	Equipment   pq.StringArray `db:"equipment"`
	Price       float64        `db:"price"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
