// Package config loads process configuration for applications embedding the
// routing core. Values come from, in increasing precedence: built-in
// defaults, an optional YAML file, and TICKETMESH_* environment variables
// (with .env support for local development).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/ticketmesh/core"
)

// Config is the runtime configuration of a router process.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is json or text.
	LogFormat string `yaml:"log_format"`

	// HopBudget caps handoffs per workflow; zero means "registered role
	// count".
	HopBudget int `yaml:"hop_budget"`

	// DefaultRole is the entry agent when no registered agent accepts a
	// ticket.
	DefaultRole string `yaml:"default_role"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "json",
		DefaultRole: core.RoleProjectManager.String(),
	}
}

// Load builds a Config from defaults, an optional YAML file (empty path
// skips the file) and environment overrides. A .env file in the working
// directory is honored when present.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TICKETMESH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TICKETMESH_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TICKETMESH_HOP_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HopBudget = n
		}
	}
	if v := os.Getenv("TICKETMESH_DEFAULT_ROLE"); v != "" {
		cfg.DefaultRole = v
	}
}

// Validate checks the configuration for values the router cannot run with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	if c.HopBudget < 0 {
		return fmt.Errorf("hop_budget must not be negative, got %d", c.HopBudget)
	}
	if _, err := core.ParseRole(c.DefaultRole); err != nil {
		return fmt.Errorf("invalid default_role: %w", err)
	}
	return nil
}

// Role returns the parsed default role. Validate must have passed.
func (c *Config) Role() core.AgentRole {
	return core.AgentRole(c.DefaultRole)
}

// SlogLevel maps LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
