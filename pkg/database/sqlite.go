package database

import (
	"context"
	"database/sql"
	"fmt"

	"go-talent-dashboard/pkg/logger"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens a pure-Go SQLite database. Use ":memory:" for a
// throwaway store.
func NewSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	// One writer at a time; an in-memory database also only lives on a
	// single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Info("Database connection established", "driver", "sqlite", "path", path)
	return db, nil
}
