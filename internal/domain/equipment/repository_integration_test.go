package equipment_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misk/misk-api/internal/domain/equipment"
	"github.com/misk/misk-api/internal/pkg/database/dbtest"
)

func TestEquipmentRepositoryAgainstPostgres(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	repo := equipment.NewRepository(db)

	var ids []int64
	for _, name := range []string{"Mic A", "Camera", "Softbox"} {
		e := &equipment.Equipment{Name: name, Type: "Other"}
		require.NoError(t, repo.Create(ctx, e))
		ids = append(ids, e.ID)
	}
	_, err := db.Exec(`UPDATE equipments SET created_at = '2025-03-01T09:00:00Z'`)
	require.NoError(t, err)

	t.Run("names by ids only returns existing rows", func(t *testing.T) {
		names, err := repo.NamesByIDs(ctx, []int64{ids[0], ids[2], 999999})
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{ids[0]: "Mic A", ids[2]: "Softbox"}, names)

		names, err = repo.NamesByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("list breaks ties by id", func(t *testing.T) {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("update keeps optional description", func(t *testing.T) {
		e := &equipment.Equipment{
			ID:          ids[0],
			Name:        "Mic B",
			Type:        "Recording",
			Description: sql.NullString{String: "condenser", Valid: true},
		}
		require.NoError(t, repo.Update(ctx, e))

		got, err := repo.GetByID(ctx, ids[0])
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Mic B", got.Name)
		assert.Equal(t, "condenser", got.Description.String)
	})

	t.Run("missing rows", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, ids[1]))
		assert.ErrorIs(t, repo.Delete(ctx, ids[1]), equipment.ErrEquipmentNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &equipment.Equipment{ID: ids[1], Name: "x", Type: "Other"}), equipment.ErrEquipmentNotFound)

		got, err := repo.GetByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("type check constraint", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, &equipment.Equipment{Name: "Drone", Type: "Drone"}))
	})
}
