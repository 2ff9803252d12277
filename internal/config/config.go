// Package config loads server settings from an optional YAML file, a .env
// file, and environment variables, in that order of increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr       string
	LogLevel   slog.Level
	SessionTTL time.Duration
}

// fileConfig is the on-disk shape; durations are parsed from strings.
type fileConfig struct {
	Addr       string `yaml:"addr"`
	LogLevel   string `yaml:"log_level"`
	SessionTTL string `yaml:"session_ttl"`
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   slog.LevelInfo,
		SessionTTL: 30 * time.Minute,
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty or
// missing), and SUDOKU_* environment variables. A .env file in the working
// directory is read first so local overrides reach os.Getenv.
func Load(path string) (Config, error) {
	_ = godotenv.Load() // absent .env is fine

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
			if err := apply(&cfg, fc); err != nil {
				return cfg, err
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func apply(cfg *Config, fc fileConfig) error {
	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = ParseLevel(fc.LogLevel)
	}
	if fc.SessionTTL != "" {
		d, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("parse session_ttl: %w", err)
		}
		cfg.SessionTTL = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SUDOKU_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SUDOKU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = ParseLevel(v)
	}
	if v := os.Getenv("SUDOKU_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SUDOKU_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
