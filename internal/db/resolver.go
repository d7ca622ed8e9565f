package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/censustat/popestat/internal/config"
	"github.com/censustat/popestat/pkg/popestat"
)

// EnvVars holds the standard PostgreSQL client environment variables.
type EnvVars struct {
	PGHOST     string
	PGPORT     string
	PGUSER     string
	PGPASSWORD string
	PGDATABASE string
	PGSSLMODE  string
}

// LoadFromEnvironment loads PostgreSQL environment variables, following
// standard client behavior.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		PGHOST:     os.Getenv("PGHOST"),
		PGPORT:     os.Getenv("PGPORT"),
		PGUSER:     os.Getenv("PGUSER"),
		PGPASSWORD: os.Getenv("PGPASSWORD"),
		PGDATABASE: os.Getenv("PGDATABASE"),
		PGSSLMODE:  os.Getenv("PGSSLMODE"),
	}
}

// ResolveConnConfig resolves connection parameters with the precedence
//
//	environment variable > popestat.yaml > built-in default
//
// mirroring how PostgreSQL client tools treat PG* variables. projectCfg
// may be nil when no popestat.yaml exists.
func ResolveConnConfig(env *EnvVars, projectCfg *config.ProjectConfig) (*popestat.ConnConfig, error) {
	cfg := &popestat.ConnConfig{
		Host:     popestat.DefaultHost,
		Port:     popestat.DefaultPort,
		Username: popestat.DefaultUsername,
		Database: popestat.DefaultDatabase,
		SSLMode:  popestat.DefaultSSLMode,
		Table:    popestat.DefaultTable,
	}

	if projectCfg != nil {
		conn := projectCfg.Connection
		if conn.Host != "" {
			cfg.Host = conn.Host
		}
		if conn.Port != 0 {
			cfg.Port = conn.Port
		}
		if conn.Username != "" {
			cfg.Username = conn.Username
		}
		if conn.Database != "" {
			cfg.Database = conn.Database
		}
		if conn.SSLMode != "" {
			cfg.SSLMode = conn.SSLMode
		}
		if projectCfg.Table != "" {
			cfg.Table = projectCfg.Table
		}
	}

	if env.PGHOST != "" {
		cfg.Host = env.PGHOST
	}
	if env.PGPORT != "" {
		port, err := strconv.Atoi(env.PGPORT)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("%w: invalid PGPORT %q", popestat.ErrInvalidConfig, env.PGPORT)
		}
		cfg.Port = port
	}
	if env.PGUSER != "" {
		cfg.Username = env.PGUSER
	}
	if env.PGDATABASE != "" {
		cfg.Database = env.PGDATABASE
	}
	if env.PGSSLMODE != "" {
		cfg.SSLMode = env.PGSSLMODE
	}
	cfg.Password = env.PGPASSWORD

	return cfg, nil
}
