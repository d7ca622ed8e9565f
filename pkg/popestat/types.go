// Package popestat defines the public configuration, interfaces and error
// taxonomy shared by the loader and reporter services.
package popestat

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConnConfig holds the parameters needed to reach the census database.
// It is built once at startup from defaults, popestat.yaml and PG*
// environment variables, then passed explicitly into the services.
type ConnConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string

	// Table is the destination table name. Fixed to DefaultTable in
	// normal operation; tests point it at scratch tables.
	Table string
}

// LoadResult summarizes a completed load run.
type LoadResult struct {
	// RunID uniquely identifies this load for log correlation.
	RunID string

	// Inserted is the number of rows written to the table.
	Inserted int

	// Skipped is the number of rows rejected by the integer-coercion
	// failure mode and left out of the table.
	Skipped int
}

// Row abstracts a single-row query result.
type Row interface {
	Scan(dest ...any) error
}

// DBConnection abstracts the database operations the loader and reporter
// need. *db.PoolAdapter implements it over pgxpool; unit tests substitute
// in-memory fakes.
type DBConnection interface {
	// Exec executes a statement without returning rows.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) Row
}
