package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timepick/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func downRedis(t *testing.T) string {
	t.Helper()
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	return "redis://" + addr
}

func TestSessionNew_NeedsNoStorage(t *testing.T) {
	out, err := run(t, "--backend", "redis", "--redis", downRedis(t), "session", "new")
	require.NoError(t, err)

	_, err = uuid.Parse(strings.TrimSpace(out))
	assert.NoError(t, err)
}

func TestStorageCommands_FailWhenRedisDown(t *testing.T) {
	_, err := run(t, "--backend", "redis", "--redis", downRedis(t), "show")
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestSetShow_FileBackend(t *testing.T) {
	base := []string{"--backend", "file", "--home", t.TempDir(), "--session", "cli-test"}

	_, err := run(t, append(base, "set", "hours", "9")...)
	require.NoError(t, err)
	_, err = run(t, append(base, "set", "m", "5")...)
	require.NoError(t, err)

	out, err := run(t, append(base, "show")...)
	require.NoError(t, err)
	assert.Equal(t, "09:05\n", out)

	out, err = run(t, append(base, "show", "--fields")...)
	require.NoError(t, err)
	assert.Equal(t, "hours=09 minutes=05\n", out)
}
