package memory

import (
	"context"
	"sync"

	"go-talent-dashboard/internal/domain"
)

type slotRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewSlotRepository keeps slots in process memory. Data is lost on restart.
func NewSlotRepository() domain.SlotStorage {
	return &slotRepo{slots: make(map[string][]byte)}
}

func (r *slotRepo) Load(ctx context.Context, slot string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.slots[slot]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (r *slotRepo) Save(ctx context.Context, slot string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slot] = append([]byte(nil), data...)
	return nil
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return nil
}
