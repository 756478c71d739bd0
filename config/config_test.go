package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.API.Port)
	assert.Equal(t, 10*time.Second, cfg.API.ShutdownTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "trading-signals", cfg.Redis.Channel)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relay.yaml")
	content := []byte(`
api:
  port: 8080
redis:
  addr: redis.internal:6380
  channel: signals-staging
logger:
  encoding: console
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	tests := []struct {
		name   string
		env    map[string]string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "file values",
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.API.Port)
				assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
				assert.Equal(t, "signals-staging", cfg.Redis.Channel)
				assert.Equal(t, "console", cfg.Log.Encoding)
			},
		},
		{
			name: "environment wins over file",
			env: map[string]string{
				"API_PORT":           "9090",
				"REDIS_CHANNEL":      "signals-env",
				"REDIS_DIAL_TIMEOUT": "250ms",
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.API.Port)
				assert.Equal(t, "signals-env", cfg.Redis.Channel)
				assert.Equal(t, 250*time.Millisecond, cfg.Redis.DialTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(path)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown log encoding", env: map[string]string{"LOGGER_ENCODING": "xml"}},
		{name: "port out of range", env: map[string]string{"API_PORT": "70000"}},
		{name: "negative redis db", env: map[string]string{"REDIS_DB": "-1"}},
		{name: "zero dial timeout", env: map[string]string{"REDIS_DIAL_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
