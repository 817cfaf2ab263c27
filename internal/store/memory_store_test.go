package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timepick/internal/domain"
	"timepick/internal/store"
)

// exerciseStorage runs the behaviour every backend shares.
func exerciseStorage(t *testing.T, s domain.SessionStorage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.GetItem(ctx, "input-time")
	require.NoError(t, err)
	assert.False(t, ok, "fresh session must be empty")

	require.NoError(t, s.SetItem(ctx, "input-time", "1"))
	require.NoError(t, s.SetItem(ctx, "other", "x"))
	require.NoError(t, s.SetItem(ctx, "input-time", "2"))

	v, ok, err := s.GetItem(ctx, "input-time")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v, "set must overwrite")

	v, ok, err = s.GetItem(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v, "keys are independent")

	require.NoError(t, s.RemoveItem(ctx, "input-time"))
	require.NoError(t, s.RemoveItem(ctx, "input-time"))
	_, ok, err = s.GetItem(ctx, "input-time")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, store.NewMemoryStorage())
}
