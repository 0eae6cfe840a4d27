package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	// The built-in endpoint table is always present.
	p, err := cfg.Endpoints.Endpoint("vehicle", "byPlate")
	require.NoError(t, err)
	assert.Equal(t, "/api/vehicle/{countryCode}/{plateNumber}", p)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `
server:
  port: 9000
storage:
  dataDir: /tmp/keystone
logging:
  level: debug
  format: json
endpoints:
  vehicle:
    collection: /v2/vehicle
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/keystone", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Overridden path wins, untouched paths keep their defaults.
	p, err := cfg.Endpoints.Endpoint("vehicle", "collection")
	require.NoError(t, err)
	assert.Equal(t, "/v2/vehicle", p)
	p, err = cfg.Endpoints.Endpoint("vehicle", "owner")
	require.NoError(t, err)
	assert.Equal(t, "/api/vehicle/{countryCode}/{plateNumber}/owner", p)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KEYSTONE_PORT", "7070")
	t.Setenv("KEYSTONE_DATA_DIR", "/var/lib/keystone")
	t.Setenv("KEYSTONE_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/var/lib/keystone", cfg.Storage.DataDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEndpoints_Lookup(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	_, err = cfg.Endpoints.Endpoint("spaceship", "collection")
	assert.Error(t, err)

	_, err = cfg.Endpoints.Endpoint("driver", "warpDrive")
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
