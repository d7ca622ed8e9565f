// Package db establishes the PostgreSQL connection used for a run.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/censustat/popestat/pkg/popestat"
)

// Pool configuration. The tool is a single sequential run, so the pool
// exists for lifecycle management rather than concurrency.
const (
	defaultMaxConns = 2
	defaultMinConns = 1
)

// Connector opens a connection pool for a ConnConfig.
type Connector struct {
	config *popestat.ConnConfig
	logger popestat.Logger
}

// NewConnector creates a Connector. The logger receives server notices,
// such as the one raised when DROP TABLE IF EXISTS finds nothing to drop.
func NewConnector(config *popestat.ConnConfig, logger popestat.Logger) *Connector {
	return &Connector{config: config, logger: logger}
}

// Connect establishes a connection pool and verifies it with a ping.
// There is deliberately no retry: a one-shot tool should fail fast and
// let the operator rerun it.
func (c *Connector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnString(c.config))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection config: %w", popestat.ErrConnectionFailed, err)
	}

	poolConfig.MaxConns = defaultMaxConns
	poolConfig.MinConns = defaultMinConns
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		// e.g. DROP TABLE IF EXISTS on a fresh database raises a NOTICE
		if notice.Severity == "WARNING" {
			c.logger.Info("server warning: %s", notice.Message)
			return
		}
		c.logger.Verbose("server notice: %s", notice.Message)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, c.config)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, c.config)
	}

	return pool, nil
}

// BuildConnString renders a keyword/value DSN from the config. The
// password is omitted when empty so that server-side trust or peer auth
// still works.
func BuildConnString(cfg *popestat.ConnConfig) string {
	parts := []string{
		fmt.Sprintf("host=%s", cfg.Host),
		fmt.Sprintf("port=%d", cfg.Port),
		fmt.Sprintf("user=%s", cfg.Username),
		fmt.Sprintf("dbname=%s", cfg.Database),
		fmt.Sprintf("sslmode=%s", cfg.SSLMode),
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", quoteDSNValue(cfg.Password)))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue quotes a DSN value that may contain spaces or quotes.
func quoteDSNValue(s string) string {
	if !strings.ContainsAny(s, ` '\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// wrapConnectionError decorates raw pgx connection errors with guidance
// for the local-instance failure modes operators actually hit.
func wrapConnectionError(err error, cfg *popestat.ConnConfig) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port

Original error: %w`, popestat.ErrConnectionFailed, addr, cfg.Host, cfg.Port, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for user "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD or ~/.pgpass)
  - User "%s" does not have access to database "%s"

Original error: %w`, popestat.ErrConnectionFailed, cfg.Username, cfg.Username, cfg.Database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

To create it:
  createdb %s

Original error: %w`, popestat.ErrConnectionFailed, cfg.Database, cfg.Database, err)

	default:
		return fmt.Errorf("%w: %w", popestat.ErrConnectionFailed, err)
	}
}
