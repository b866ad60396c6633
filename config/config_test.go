package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/schoolfinder/directory"
	"github.com/poiesic/schoolfinder/storage"
)

func setCredentials(t *testing.T) {
	t.Setenv("SCHOOLFINDER_APP_ID", "env-id")
	t.Setenv("SCHOOLFINDER_APP_KEY", "env-key")
}

func TestLoad_Defaults(t *testing.T) {
	setCredentials(t)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-id", s.Directory.AppID)
	assert.Equal(t, "env-key", s.Directory.AppKey)
	assert.Equal(t, directory.DefaultBaseURL, s.Directory.BaseURL)
	assert.Equal(t, 60*time.Second, s.Directory.RateWindow)
	assert.Equal(t, 20, s.Directory.MaxCallsPerWindow)
	assert.Equal(t, 100*time.Millisecond, s.Directory.MinCallDelay)
	assert.Equal(t, 1, s.Directory.MaxAttempts)
	assert.Equal(t, storage.DefaultTTL, s.CacheTTL)
	assert.Empty(t, s.CacheDir)
	assert.Equal(t, DefaultListenAddr, s.ListenAddr)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("SCHOOLFINDER_APP_ID", "")
	t.Setenv("SCHOOLFINDER_APP_KEY", "")

	_, err := Load("")
	assert.ErrorIs(t, err, directory.ErrMissingCredentials)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("SCHOOLFINDER_RATE_MAX_CALLS", "5")
	t.Setenv("SCHOOLFINDER_RATE_WINDOW", "30s")
	t.Setenv("SCHOOLFINDER_RATE_MIN_DELAY", "250ms")
	t.Setenv("SCHOOLFINDER_CACHE_TTL", "1h")
	t.Setenv("SCHOOLFINDER_MAX_ATTEMPTS", "3")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Directory.MaxCallsPerWindow)
	assert.Equal(t, 30*time.Second, s.Directory.RateWindow)
	assert.Equal(t, 250*time.Millisecond, s.Directory.MinCallDelay)
	assert.Equal(t, time.Hour, s.CacheTTL)
	assert.Equal(t, 3, s.Directory.MaxAttempts)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schoolfinder.yaml")
	content := `app_id: file-id
app_key: file-key
base_url: https://directory.example.test/v2/
rate_max_calls: 7
cache_dir: /tmp/sf-cache
pool_size: 4
listen_addr: 127.0.0.1:9090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values", func(t *testing.T) {
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-id", s.Directory.AppID)
		assert.Equal(t, "https://directory.example.test/v2", s.Directory.BaseURL)
		assert.Equal(t, 7, s.Directory.MaxCallsPerWindow)
		assert.Equal(t, "/tmp/sf-cache", s.CacheDir)
		assert.Equal(t, 4, s.PoolSize)
		assert.Equal(t, "127.0.0.1:9090", s.ListenAddr)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("SCHOOLFINDER_APP_ID", "env-id")
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-id", s.Directory.AppID)
		assert.Equal(t, "file-key", s.Directory.AppKey)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	setCredentials(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidSettings(t *testing.T) {
	setCredentials(t)

	t.Run("zero ttl", func(t *testing.T) {
		t.Setenv("SCHOOLFINDER_CACHE_TTL", "0s")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidSetting)
	})

	t.Run("negative pool", func(t *testing.T) {
		t.Setenv("SCHOOLFINDER_POOL_SIZE", "-1")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidSetting)
	})
}
