// Package dbtest provides shared helpers for tests that need a real
// PostgreSQL instance.
package dbtest

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/censustat/popestat/internal/testinfra"
)

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func getOrStartContainer() (string, error) {
	containerOnce.Do(func() {
		container, err := testinfra.StartPostgres(context.Background())
		if err != nil {
			containerErr = err
			return
		}
		containerConn = container.ConnString
	})
	return containerConn, containerErr
}

// ConnString returns the test database connection string.
// Priority: POPESTAT_TEST_CONN env var > auto-started container > skip.
func ConnString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv("POPESTAT_TEST_CONN"); connString != "" {
		return connString
	}

	connString, err := getOrStartContainer()
	if err != nil {
		t.Skipf("POPESTAT_TEST_CONN not set and Docker unavailable: %v", err)
	}
	return connString
}

// RequireDatabase skips in -short mode, then returns a pool connected to
// the test database. The pool is closed when the test finishes.
func RequireDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool, err := pgxpool.New(context.Background(), ConnString(t))
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
