package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// undefined_table
const pgUndefinedTable = "42P01"

type slotRepo struct {
	db    *pgxpool.Pool
	table string
}

// NewSlotRepository keeps slots as rows of a two-column table. The table
// name is quoted so it may be configured freely.
func NewSlotRepository(db *pgxpool.Pool, table string) domain.SlotStorage {
	return &slotRepo{db: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the slot table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, table string) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, pq.QuoteIdentifier(table))
	_, err := db.Exec(ctx, query)
	return err
}

func (r *slotRepo) Load(ctx context.Context, slot string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE name = $1`, r.table)

	var payload string
	err := r.db.QueryRow(ctx, query, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		// A table nobody created yet holds no slots.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (r *slotRepo) Save(ctx context.Context, slot string, data []byte) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, payload, updated_at) VALUES ($1, $2, NOW())
              ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`, r.table)
	_, err := r.db.Exec(ctx, query, slot, string(data))
	return err
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
