package redis

import (
	"context"
	"errors"

	"go-talent-dashboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

type slotRepo struct {
	client *redis.Client
	prefix string
}

// NewSlotRepository stores each slot as one string key named prefix+slot.
func NewSlotRepository(client *redis.Client, prefix string) domain.SlotStorage {
	return &slotRepo{client: client, prefix: prefix}
}

func (r *slotRepo) key(slot string) string {
	return r.prefix + slot
}

func (r *slotRepo) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (r *slotRepo) Save(ctx context.Context, slot string, data []byte) error {
	return r.client.Set(ctx, r.key(slot), data, 0).Err()
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
