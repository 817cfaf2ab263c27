package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timepick/internal/app"
	"timepick/internal/config"
	"timepick/internal/domain"
	"timepick/internal/store"
)

func baseConfig() config.Config {
	return config.Config{
		Session:    "test-session",
		Backend:    config.BackendMemory,
		SessionTTL: time.Hour,
		StorageKey: "input-time",
		Locale:     "en-US",
	}
}

var now = time.Date(2026, 10, 17, 18, 5, 0, 0, time.UTC)

func newWire(t *testing.T, cfg config.Config) *app.Wire {
	t.Helper()
	w, err := app.NewWire(context.Background(), cfg, nil,
		app.WithClock(clockwork.NewFakeClockAt(now)),
		app.WithLocation(time.UTC),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestNewWire_Memory(t *testing.T) {
	w := newWire(t, baseConfig())

	assert.IsType(t, &store.MemoryStorage{}, w.Storage)
	assert.Equal(t, domain.SessionID("test-session"), w.Session)

	p := w.Picker(context.Background())
	assert.Equal(t, "18:05", p.FormatTime())
}

func TestNewWire_FileSharesSessionAcrossMounts(t *testing.T) {
	cfg := baseConfig()
	cfg.Backend = config.BackendFile
	cfg.Home = t.TempDir()
	ctx := context.Background()

	first := newWire(t, cfg).Picker(ctx)
	first.HandleText(domain.FieldHours, "9")
	first.HandleText(domain.FieldMinutes, "30")
	require.NoError(t, first.Err())

	second := newWire(t, cfg).Picker(ctx)
	assert.Equal(t, "09:30", second.FormatTime())

	entries, err := os.ReadDir(filepath.Join(cfg.Home, store.SessionsDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	other := cfg
	other.Session = "another-shell"
	assert.Equal(t, "18:05", newWire(t, other).Picker(ctx).FormatTime())
}

func TestNewWire_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := baseConfig()
	cfg.Backend = config.BackendRedis
	cfg.RedisURL = "redis://" + mr.Addr()
	ctx := context.Background()

	p := newWire(t, cfg).Picker(ctx)
	p.HandleKey(domain.FieldMinutes, domain.KeyIncrease)
	require.NoError(t, p.Err())

	assert.True(t, mr.Exists("timepick:test-session:input-time"))
	assert.Equal(t, "18:06", newWire(t, cfg).Picker(ctx).FormatTime())
}

func TestNewWire_Errors(t *testing.T) {
	cfg := baseConfig()
	cfg.Backend = "tape"
	_, err := app.NewWire(context.Background(), cfg, nil)
	assert.Error(t, err)

	cfg = baseConfig()
	cfg.Locale = "!!"
	_, err = app.NewWire(context.Background(), cfg, nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg = baseConfig()
	cfg.Backend = config.BackendRedis
	cfg.RedisURL = "redis://" + addr
	_, err = app.NewWire(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, domain.ErrStorage)
}
