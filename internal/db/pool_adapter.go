package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/censustat/popestat/pkg/popestat"
)

// PoolAdapter adapts *pgxpool.Pool to the popestat.DBConnection interface,
// keeping pgx-specific types out of the loader and reporter.
type PoolAdapter struct {
	pool *pgxpool.Pool
}

// NewPoolAdapter creates a new PoolAdapter wrapping the given pool.
func NewPoolAdapter(pool *pgxpool.Pool) popestat.DBConnection {
	return &PoolAdapter{pool: pool}
}

// Exec executes a statement without returning any rows.
func (p *PoolAdapter) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, args...)
}

// QueryRow executes a query that is expected to return at most one row.
func (p *PoolAdapter) QueryRow(ctx context.Context, sql string, args ...any) popestat.Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

// Verify PoolAdapter implements DBConnection at compile time
var _ popestat.DBConnection = (*PoolAdapter)(nil)
