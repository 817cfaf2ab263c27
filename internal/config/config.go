package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the state directory, default $HOME/.timepick.
	Home string `env:"TIMEPICK_HOME" yaml:"home"`
	// Session is the session id; empty means derived from the invoking shell.
	Session string `env:"TIMEPICK_SESSION" yaml:"session"`
	// Backend is one of memory, file or redis.
	Backend  string `env:"TIMEPICK_BACKEND" default:"file" yaml:"backend"`
	RedisURL string `env:"TIMEPICK_REDIS_URL" yaml:"redis_url"`
	// SessionTTL is the idle time after which a session ends. Zero never expires.
	SessionTTL time.Duration `env:"TIMEPICK_SESSION_TTL" default:"12h" yaml:"session_ttl"`
	StorageKey string        `env:"TIMEPICK_STORAGE_KEY" default:"input-time" yaml:"storage_key"`
	// Locale is the BCP 47 tag used for formatting.
	Locale    string `env:"TIMEPICK_LOCALE" default:"en-US" yaml:"locale"`
	LogLevel  string `env:"TIMEPICK_LOG_LEVEL" default:"warn" yaml:"log_level"`
	LogFormat string `env:"TIMEPICK_LOG_FORMAT" default:"text" yaml:"log_format"`
}

// Load reads the environment (and .env, if present) and then the YAML file at
// path, if path is not empty. The result is not validated; call Validate once
// flags have been applied.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("Ignoring unreadable .env file", "error", err)
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// loadFile overlays the keys present in the YAML file at path onto cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks cfg for values the app cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendMemory, BackendFile, BackendRedis)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative, got %s", c.SessionTTL)
	}
	if c.StorageKey == "" {
		return errors.New("storage_key is required")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}
