package shared_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_reviews/internal/shared"
)

// unset clears k for the duration of the test; godotenv never overrides a
// variable that is present, even when empty.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	unset(t, "HTTP_ADDR", "REDIS_ADDR", "CACHE_TTL_SECONDS", "REQUEST_TIMEOUT_SECONDS")

	c := shared.Load()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "", c.RedisAddr)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestLoad_EnvAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:9999\nREDIS_ADDR=cache:6379\n"), 0o600)
	require.NoError(t, err)

	unset(t, "HTTP_ADDR", "REDIS_ADDR")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	c := shared.Load()
	assert.Equal(t, ":9999", c.HTTPAddr)
	assert.Equal(t, "cache:6379", c.RedisAddr)
	assert.Equal(t, time.Minute, c.CacheTTL)
	assert.Equal(t, 10, c.MaxOpenConns)
}
