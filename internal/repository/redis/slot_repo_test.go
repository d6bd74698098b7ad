package redis_test

import (
	"context"
	"os"
	"testing"

	"go-talent-dashboard/internal/domain"
	redisrepo "go-talent-dashboard/internal/repository/redis"
	"go-talent-dashboard/internal/repository/record"
	"go-talent-dashboard/pkg/redis"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when TEST_REDIS_URL is set.
func TestSlotRepository(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.NewClient(ctx, redis.Config{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	prefix := "talent-test:" + uuid.NewString() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})
	slots := redisrepo.NewSlotRepository(client, prefix)

	t.Run("missing slot reads as empty", func(t *testing.T) {
		data, err := slots.Load(ctx, string(domain.KindCandidates))
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save then load", func(t *testing.T) {
		require.NoError(t, slots.Save(ctx, "scratch", []byte(`[{"id":"a"}]`)))
		require.NoError(t, slots.Save(ctx, "scratch", []byte(`[]`)))

		data, err := slots.Load(ctx, "scratch")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("record store round trip", func(t *testing.T) {
		store, err := record.NewJobRequirementStore(slots)
		require.NoError(t, err)

		created, err := store.Create(ctx, &domain.JobRequirement{JobTitle: "SRE", Skills: []string{"Go"}})
		require.NoError(t, err)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "SRE", found.JobTitle)
	})

	assert.NoError(t, slots.Ping(ctx))
}
