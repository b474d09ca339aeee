// Package logging builds the application's zap logger. The TUI owns the
// terminal, so logs go to a file rather than stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures logging.
type Config struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // "" = default log path, "stderr" for the terminal
}

// DefaultConfig logs at info level to the default file.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// DefaultPath returns $XDG_STATE_HOME/maturity/maturity.log, falling back
// to ~/.local/state.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "maturity", "maturity.log"), nil
}

// New builds a JSON logger from cfg. verbose forces debug level.
func New(cfg Config, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Sampling = nil
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := cfg.Level
	if verbose {
		level = "debug"
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = lvl
	}

	out := cfg.File
	if out == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		out = p
	}
	if out != "stderr" && out != "stdout" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{out}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
