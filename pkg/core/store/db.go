// Package store persists completed analysis runs. Persistence is an
// at-least-once write performed after the pure computation finishes; the
// engine itself never touches the database.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB creates the process-wide connection pool from a Postgres URL and
// verifies connectivity. Callers decide where the URL comes from; this
// package never reads the environment. Subsequent calls are no-ops.
func InitDB(ctx context.Context, databaseURL string) error {
	var err error
	once.Do(func() {
		if databaseURL == "" {
			err = fmt.Errorf("database URL is empty")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(databaseURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database URL: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			err = fmt.Errorf("failed to create connection pool: %w", err)
			return
		}
		err = pool.Ping(ctx)
	})
	return err
}

// GetPool returns the connection pool, nil before InitDB succeeds.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
