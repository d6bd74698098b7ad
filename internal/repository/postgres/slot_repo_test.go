package postgres_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/repository/postgres"
	"go-talent-dashboard/internal/repository/record"
	"go-talent-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when TEST_DATABASE_URL is set.
func TestSlotRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	table := "slots_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+pq.QuoteIdentifier(table))
	})
	slots := postgres.NewSlotRepository(pool, table)

	t.Run("missing table reads as empty", func(t *testing.T) {
		data, err := slots.Load(ctx, string(domain.KindJobRequirements))
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	require.NoError(t, postgres.EnsureSchema(ctx, pool, table))
	require.NoError(t, postgres.EnsureSchema(ctx, pool, table))

	t.Run("missing row reads as empty", func(t *testing.T) {
		data, err := slots.Load(ctx, string(domain.KindCandidates))
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save upserts", func(t *testing.T) {
		require.NoError(t, slots.Save(ctx, "scratch", []byte(`[{"id":"a"}]`)))
		require.NoError(t, slots.Save(ctx, "scratch", []byte(`[]`)))

		data, err := slots.Load(ctx, "scratch")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("record store round trip", func(t *testing.T) {
		store, err := record.NewCandidateStore(slots)
		require.NoError(t, err)

		created, err := store.Create(ctx, &domain.CandidateProfile{FullName: "Anita Reddy", MatchScore: 84})
		require.NoError(t, err)

		all, err := store.List(ctx, domain.SortSpec{}, 0)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, created.ID, all[0].ID)
	})

	assert.NoError(t, slots.Ping(ctx))
}
