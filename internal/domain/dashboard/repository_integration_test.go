package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misk/misk-api/internal/domain/booking"
	"github.com/misk/misk-api/internal/domain/dashboard"
	"github.com/misk/misk-api/internal/pkg/database/dbtest"
)

func TestOverviewAgainstPostgres(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO studios (id, name, area, category, description, price)
		VALUES ('studio-a', 'Studio A', 20, 'Podcast', 'd', 100),
		       ('studio-b', 'Studio B', 40, 'Production', 'd', 250)
	`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO equipments (name, type) VALUES ('Mic A', 'Audio')`)
	require.NoError(t, err)

	bookingRepo := booking.NewRepository(db)
	for i := 0; i < 7; i++ {
		require.NoError(t, bookingRepo.Create(ctx, &booking.Booking{
			StudioID: "studio-a", StudioName: "Studio A",
			FirstName: "Léa", LastName: "Martin", Email: "lea@example.com",
			Phone: "0612345678", City: "Lyon",
		}))
	}

	svc := dashboard.NewService(dashboard.NewRepository(db), booking.NewService(bookingRepo, nil, nil))
	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, dashboard.Stats{StudiosCount: 2, BookingsCount: 7, EquipmentsCount: 1}, overview.Stats)
	require.Len(t, overview.LatestBookings, 5)
	assert.Equal(t, "Studio A", overview.LatestBookings[0].StudioName)
	assert.Nil(t, overview.LatestBookings[0].Message)
}
