// Package config loads the optional popestat.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig mirrors the connection section of popestat.yaml.
// Zero values mean "not set" and fall through to environment variables
// and built-in defaults.
type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// ProjectConfig is the full popestat.yaml document.
type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`

	// Table overrides the destination table name. Mostly useful for
	// loading side-by-side snapshots into the same database.
	Table string `yaml:"table"`
}

const ConfigFileName = "popestat.yaml"

// Load reads popestat.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
