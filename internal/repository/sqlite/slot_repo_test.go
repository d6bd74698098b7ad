package sqlite_test

import (
	"context"
	"testing"

	"go-talent-dashboard/internal/repository/sqlite"
	"go-talent-dashboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRepository(t *testing.T) {
	ctx := context.Background()

	db, err := database.NewSQLiteConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := sqlite.NewSlotRepository(ctx, db)
	require.NoError(t, err)

	t.Run("missing slot loads as nil", func(t *testing.T) {
		data, err := repo.Load(ctx, "jobRequirements")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save then overwrite", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "jobRequirements", []byte(`[]`)))
		require.NoError(t, repo.Save(ctx, "jobRequirements", []byte(`[{"id":"j1"}]`)))

		data, err := repo.Load(ctx, "jobRequirements")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"j1"}]`, string(data))
	})

	t.Run("slots are independent", func(t *testing.T) {
		data, err := repo.Load(ctx, "candidates")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	assert.NoError(t, repo.Ping(ctx))
}
