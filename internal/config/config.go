// Package config loads the YAML configuration file and applies
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/maturity/internal/export"
	"github.com/abhisek/maturity/internal/insights"
	"github.com/abhisek/maturity/internal/llm"
	"github.com/abhisek/maturity/internal/logging"
	"github.com/abhisek/maturity/internal/sink"
)

// Config is the full application configuration.
type Config struct {
	// Database configures the local SQLite history.
	Database DatabaseConfig `yaml:"database"`

	// Sink selects where completed results are saved.
	Sink sink.Config `yaml:"sink"`

	// Export configures result downloads.
	Export ExportConfig `yaml:"export"`

	// LLM configures the optional AI provider used for insights.
	LLM llm.Config `yaml:"llm"`

	// Insights tunes development plan generation.
	Insights insights.Config `yaml:"insights"`

	// Logging configures the log file.
	Logging logging.Config `yaml:"logging"`
}

// DatabaseConfig configures the local database.
type DatabaseConfig struct {
	Path string `yaml:"path"` // "" = store.DefaultDBPath()
}

// ExportConfig configures result export.
type ExportConfig struct {
	Dir    string `yaml:"dir"`    // "" = current directory
	Format string `yaml:"format"` // csv, json, yaml
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Sink:     sink.Config{Kind: sink.KindSQLite},
		Export:   ExportConfig{Format: string(export.FormatCSV)},
		LLM:      llm.DefaultConfig(),
		Insights: insights.DefaultConfig(),
		Logging:  logging.DefaultConfig(),
	}
}

// DefaultPath resolves the config file path:
// 1. MATURITY_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/maturity/config.yaml (os.UserConfigDir)
func DefaultPath() (string, error) {
	if p := os.Getenv("MATURITY_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "maturity", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// API keys may be present.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Sink.Kind {
	case "", sink.KindDisabled, sink.KindSQLite, sink.KindPostgres, sink.KindBoth:
	default:
		return fmt.Errorf("config: unknown sink kind %q", c.Sink.Kind)
	}
	if c.Export.Format != "" {
		if _, err := export.ParseFormat(c.Export.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// ExportFormat returns the configured export format, defaulting to CSV.
func (c *Config) ExportFormat() export.Format {
	if f, err := export.ParseFormat(c.Export.Format); err == nil {
		return f
	}
	return export.FormatCSV
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("MATURITY_DB"); p != "" {
		c.Database.Path = p
	}

	if k := os.Getenv("MATURITY_SINK"); k != "" {
		c.Sink.Kind = k
	}
	if dsn := os.Getenv("MATURITY_POSTGRES_DSN"); dsn != "" {
		c.Sink.Postgres.DSN = dsn
		if os.Getenv("MATURITY_SINK") == "" && c.Sink.Kind == sink.KindSQLite {
			c.Sink.Kind = sink.KindBoth
		}
	}
	if t := os.Getenv("MATURITY_POSTGRES_TABLE"); t != "" {
		c.Sink.Postgres.Table = t
	}

	if d := os.Getenv("MATURITY_EXPORT_DIR"); d != "" {
		c.Export.Dir = d
	}

	if l := os.Getenv("MATURITY_LOG_LEVEL"); l != "" {
		c.Logging.Level = l
	}
	if f := os.Getenv("MATURITY_LOG_FILE"); f != "" {
		c.Logging.File = f
	}

	c.LLM.ApplyEnv()
	c.LLM.Discover()
}
