package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censustat/popestat/internal/config"
	"github.com/censustat/popestat/pkg/popestat"
)

func TestResolveConnConfig_Defaults(t *testing.T) {
	cfg, err := ResolveConnConfig(&EnvVars{}, nil)
	require.NoError(t, err)

	assert.Equal(t, popestat.DefaultHost, cfg.Host)
	assert.Equal(t, popestat.DefaultPort, cfg.Port)
	assert.Equal(t, popestat.DefaultUsername, cfg.Username)
	assert.Equal(t, popestat.DefaultDatabase, cfg.Database)
	assert.Equal(t, popestat.DefaultSSLMode, cfg.SSLMode)
	assert.Equal(t, popestat.DefaultTable, cfg.Table)
	assert.Empty(t, cfg.Password)
}

func TestResolveConnConfig_ProjectConfigOverridesDefaults(t *testing.T) {
	projectCfg := &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host:     "db.internal",
			Port:     5433,
			Username: "loader",
			Database: "estimates",
			SSLMode:  "require",
		},
		Table: "popest_2014",
	}

	cfg, err := ResolveConnConfig(&EnvVars{}, projectCfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "loader", cfg.Username)
	assert.Equal(t, "estimates", cfg.Database)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, "popest_2014", cfg.Table)
}

func TestResolveConnConfig_EnvironmentOverridesProjectConfig(t *testing.T) {
	projectCfg := &config.ProjectConfig{
		Connection: config.ConnectionConfig{Host: "db.internal", Database: "estimates"},
	}
	env := &EnvVars{
		PGHOST:     "localhost",
		PGPORT:     "15432",
		PGUSER:     "postgres",
		PGDATABASE: "scratch",
		PGSSLMODE:  "disable",
		PGPASSWORD: "hunter2",
	}

	cfg, err := ResolveConnConfig(env, projectCfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 15432, cfg.Port)
	assert.Equal(t, "postgres", cfg.Username)
	assert.Equal(t, "scratch", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestResolveConnConfig_InvalidPGPort(t *testing.T) {
	for _, port := range []string{"abc", "-1", "0", "70000"} {
		t.Run(port, func(t *testing.T) {
			_, err := ResolveConnConfig(&EnvVars{PGPORT: port}, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, popestat.ErrInvalidConfig)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PGHOST", "envhost")
	t.Setenv("PGPASSWORD", "secret")

	env := LoadFromEnvironment()
	assert.Equal(t, "envhost", env.PGHOST)
	assert.Equal(t, "secret", env.PGPASSWORD)
}
