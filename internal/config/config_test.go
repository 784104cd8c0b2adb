package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvLogFile, EnvLogLevel, EnvMetricsAddr, EnvOTLPEndpoint, EnvServiceName, EnvOTLPInsecure} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, "carfleet", cfg.Telemetry.ServiceName)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "carfleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://fleet.internal:9000/
log:
  file: /tmp/carfleet.log
  level: debug
metrics:
  addr: ":9464"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://fleet.internal:9000", cfg.API.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "/tmp/carfleet.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9464", cfg.Metrics.Addr)

	t.Setenv(EnvAPIURL, "https://api.example.com/fleet")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOTLPEndpoint, "collector:4318")
	t.Setenv(EnvOTLPInsecure, "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/fleet", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.False(t, cfg.Telemetry.Insecure)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("api: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	t.Setenv(EnvAPIURL, "localhost:8080")
	_, err = Load("")
	assert.ErrorContains(t, err, "invalid API base URL")

	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "verbose")
	_, err = Load("")
	assert.ErrorContains(t, err, "invalid log level")
}
