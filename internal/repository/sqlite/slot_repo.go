package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-talent-dashboard/internal/domain"
)

type slotRepo struct {
	db *sql.DB
}

// NewSlotRepository stores slots in a single key/value table, creating it
// when missing.
func NewSlotRepository(ctx context.Context, db *sql.DB) (domain.SlotStorage, error) {
	r := &slotRepo{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *slotRepo) ensureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS slots (
		name       TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *slotRepo) Load(ctx context.Context, slot string) ([]byte, error) {
	query := `SELECT payload FROM slots WHERE name = ?`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (r *slotRepo) Save(ctx context.Context, slot string, data []byte) error {
	query := `INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
              ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, slot, data, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
