package services

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"

	"github.com/censustat/popestat/pkg/popestat"
)

// ReporterService runs the three aggregate queries over the freshly
// loaded table and writes one line per query to out.
//
// Standard deviation is the population definition (STDDEV_POP): a
// single-row table reports 0, never NULL.
type ReporterService struct {
	conn   popestat.DBConnection
	out    io.Writer
	logger popestat.Logger
}

// NewReporterService creates a ReporterService writing report lines to out.
func NewReporterService(conn popestat.DBConnection, out io.Writer, logger popestat.Logger) *ReporterService {
	if conn == nil {
		panic("conn cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReporterService{conn: conn, out: out, logger: logger}
}

// Report executes the three queries in their fixed order. Aggregates over
// an empty table come back as SQL NULL and are rendered as "n/a".
func (s *ReporterService) Report(ctx context.Context, table string) error {
	ident := pgx.Identifier{table}.Sanitize()

	var minPop *int64
	query := fmt.Sprintf("SELECT MIN(popestimate2014) FROM %s", ident)
	s.logger.Verbose("query: %s", query)
	if err := s.conn.QueryRow(ctx, query).Scan(&minPop); err != nil {
		return fmt.Errorf("min query failed: %w", err)
	}
	if err := s.writeLine("min popestimate2014: %s", formatInt(minPop)); err != nil {
		return err
	}

	var maxPop *int64
	query = fmt.Sprintf("SELECT MAX(popestimate2013) FROM %s", ident)
	s.logger.Verbose("query: %s", query)
	if err := s.conn.QueryRow(ctx, query).Scan(&maxPop); err != nil {
		return fmt.Errorf("max query failed: %w", err)
	}
	if err := s.writeLine("max popestimate2013: %s", formatInt(maxPop)); err != nil {
		return err
	}

	var mean, stddev *float64
	query = fmt.Sprintf(
		"SELECT AVG(popestimate2012)::float8, STDDEV_POP(popestimate2012)::float8 FROM %s", ident)
	s.logger.Verbose("query: %s", query)
	if err := s.conn.QueryRow(ctx, query).Scan(&mean, &stddev); err != nil {
		return fmt.Errorf("mean/stddev query failed: %w", err)
	}
	return s.writeLine("mean popestimate2012: %s (stddev %s)",
		formatFloat(mean, "%.2f"), formatFloat(stddev, "%+.2f"))
}

func (s *ReporterService) writeLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format+"\n", args...); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// formatInt renders a nullable integer aggregate.
func formatInt(v *int64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}

// formatFloat renders a nullable float aggregate with the given verb.
// The stddev verb carries an explicit leading sign; the value is
// non-negative, so it reads as "+".
func formatFloat(v *float64, verb string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(verb, *v)
}
