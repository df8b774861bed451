package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lintang/geogrid/pkg/geohash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, geohash.AxisDiagonal, cfg.AxisMode())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geogrid.yaml")
	content := []byte(`
server:
  listen_addr: ":7000"
  write_timeout: 30s
log:
  level: debug
  format: text
geo:
  axis_mode: edges
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("GEOGRID_SERVER_LISTEN_ADDR", ":7100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7100", cfg.Server.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, geohash.AxisEdges, cfg.AxisMode())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{ListenAddr: "", ReadTimeout: time.Second, WriteTimeout: 0, ShutdownTimeout: time.Second},
		Log:    LogConfig{Level: "verbose", Format: "json"},
		Geo:    GeoConfig{AxisMode: "corners"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen_addr is required")
	assert.Contains(t, err.Error(), "server.write_timeout must be positive")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "geo.axis_mode")
}
