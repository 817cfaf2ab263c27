package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"timepick/internal/config"
	"timepick/internal/domain"
	"timepick/internal/format"
	"timepick/internal/persistence"
	"timepick/internal/services/picker"
	"timepick/internal/services/session"
	"timepick/internal/store"
)

// Wire bundles the stores, formatter and clock for the CLI.
type Wire struct {
	Session   domain.SessionID
	Storage   domain.SessionStorage
	Times     *persistence.SessionTimeStore
	Formatter *format.Formatter
	Clock     clockwork.Clock
	Logger    *slog.Logger

	redis *redis.Client
}

// Option adjusts NewWire for tests.
type Option func(*options)

type options struct {
	clock    clockwork.Clock
	location *time.Location
}

// WithClock replaces the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithLocation replaces time.Local as the location of stored instants.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// NewWire constructs the dependency graph from cfg. cfg must be valid.
func NewWire(ctx context.Context, cfg config.Config, logger *slog.Logger, opts ...Option) (*Wire, error) {
	o := options{clock: clockwork.NewRealClock(), location: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	w := &Wire{
		Session: session.Resolve(cfg.Session),
		Clock:   o.clock,
		Logger:  logger,
	}

	switch cfg.Backend {
	case config.BackendMemory:
		w.Storage = store.NewMemoryStorage()
	case config.BackendFile:
		home, err := resolveHome(cfg.Home)
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, store.SessionsDir)
		w.Storage = store.NewFileStorage(dir, w.Session, cfg.SessionTTL, o.clock)
	case config.BackendRedis:
		rdb, err := store.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		w.redis = rdb
		w.Storage = store.NewRedisStorage(rdb, w.Session, cfg.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	formatter, err := format.ForLocale(cfg.Locale)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	w.Formatter = formatter

	w.Times = persistence.New(w.Storage,
		persistence.WithKey(domain.StorageKey(cfg.StorageKey)),
		persistence.WithClock(o.clock),
		persistence.WithLocation(o.location),
	)

	logger.Debug("Wired session storage", "backend", cfg.Backend, "session", w.Session.String())
	return w, nil
}

// Picker mounts a picker on the wired stores.
func (w *Wire) Picker(ctx context.Context) *picker.Picker {
	return picker.New(ctx, w.Times, w.Clock, w.Formatter, w.Logger)
}

// Close releases backend connections.
func (w *Wire) Close() error {
	if w.redis != nil {
		return w.redis.Close()
	}
	return nil
}

// resolveHome returns home, or $HOME/.timepick when empty.
func resolveHome(home string) (string, error) {
	if home != "" {
		return home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(dir, ".timepick"), nil
}
