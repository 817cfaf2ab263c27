package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timepick/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("Saved time to session", "value", "07:45")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Saved time to session", entry["msg"])
	assert.Equal(t, "07:45", entry["value"])
	assert.Same(t, logger, slog.Default())
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("Failed to save time to session")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("loud"))
}
