// Package services implements the two sequential phases of a run: loading
// the CSV into the destination table, then reporting aggregates over it.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/censustat/popestat/internal/census"
	"github.com/censustat/popestat/pkg/popestat"
)

// LoaderService stages a population-estimates CSV into the destination
// table, recreating the table on every run.
//
// Thread-Safety: NOT safe for concurrent Load() calls on the same
// instance; the tool runs a single load per process.
type LoaderService struct {
	conn   popestat.DBConnection
	logger popestat.Logger
}

// NewLoaderService creates a LoaderService with its dependencies injected.
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not mid-load.
func NewLoaderService(conn popestat.DBConnection, logger popestat.Logger) *LoaderService {
	if conn == nil {
		panic("conn cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &LoaderService{conn: conn, logger: logger}
}

// Load reads the CSV at path and loads it into table.
//
// The table is dropped and recreated, so rerunning against the same file
// is idempotent. Each row is inserted individually with positional
// parameter binding of the raw CSV fields; the server coerces them to the
// column types. A row whose integer field fails coercion (SQLSTATE 22P02
// or 22003, e.g. a census2010pop of "N/A") is skipped and counted; any
// other database error aborts the load.
func (s *LoaderService) Load(ctx context.Context, table, path string) (*popestat.LoadResult, error) {
	rows, err := census.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result := &popestat.LoadResult{RunID: uuid.NewString()}
	s.logger.Verbose("load run %s: %d data rows from %s", result.RunID, len(rows), path)

	if _, err := s.conn.Exec(ctx, census.DropTableSQL(table)); err != nil {
		return nil, fmt.Errorf("%w: drop table %s: %w", popestat.ErrLoadFailed, table, err)
	}
	if _, err := s.conn.Exec(ctx, census.CreateTableSQL(table)); err != nil {
		return nil, fmt.Errorf("%w: create table %s: %w", popestat.ErrLoadFailed, table, err)
	}

	insertSQL := census.InsertSQL(table)
	for i, row := range rows {
		args := make([]any, len(row))
		for j, field := range row {
			args[j] = field
		}

		if _, err := s.conn.Exec(ctx, insertSQL, args...); err != nil {
			ordinal := i + 1 // 1-based position among data rows, header excluded
			if isRowDataError(err) {
				result.Skipped++
				s.logger.Error("skipping row %d: %v", ordinal, err)
				continue
			}
			return nil, fmt.Errorf("%w: row %d: %w", popestat.ErrLoadFailed, ordinal, err)
		}
		result.Inserted++
	}

	s.logger.Info("✓ Load complete: %d rows inserted, %s", result.Inserted, errorCount(result.Skipped))
	return result, nil
}

// isRowDataError reports whether err is the one recoverable per-row
// failure: an integer column rejecting its value.
func isRowDataError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == popestat.SQLStateInvalidTextRepresentation ||
		pgErr.Code == popestat.SQLStateNumericValueOutOfRange
}

// errorCount renders a skipped-row count with singular/plural phrasing.
func errorCount(n int) string {
	if n == 1 {
		return "1 error"
	}
	return fmt.Sprintf("%d errors", n)
}
