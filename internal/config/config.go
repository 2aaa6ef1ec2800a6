package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from the environment
type Config struct {
	Host string `env:"SQUARES_HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the durable store: memory, sqlite or redis
	StorageType  string        `env:"SQUARES_STORAGE" envDefault:"sqlite"`
	SQLitePath   string        `env:"SQUARES_SQLITE_PATH" envDefault:"squares.db"`
	RedisURL     string        `env:"REDIS_URL"`
	RedisPrefix  string        `env:"SQUARES_REDIS_PREFIX" envDefault:"squares"`
	SaveDebounce time.Duration `env:"SQUARES_SAVE_DEBOUNCE" envDefault:"500ms"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	APIKey        string `env:"API_KEY"`
	AnalysisModel string `env:"SQUARES_ANALYSIS_MODEL" envDefault:"gemini-3-flash-preview"`

	LogLevel string `env:"SQUARES_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c Config) Validate() error {
	switch c.StorageType {
	case "memory", "sqlite":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when SQUARES_STORAGE=redis")
		}
	default:
		return fmt.Errorf("invalid SQUARES_STORAGE %q: must be memory, sqlite or redis", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.SaveDebounce <= 0 {
		return fmt.Errorf("SQUARES_SAVE_DEBOUNCE must be positive")
	}
	return nil
}

// AnalysisKey returns the Gemini key, preferring GEMINI_API_KEY over API_KEY
func (c Config) AnalysisKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.APIKey
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
