package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "browse", "config.toml")
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", "browse", "browse.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "data", "browse", "instance"), cfg.Downloads.InstanceDir)
	assert.Equal(t, 9*time.Second, cfg.Downloads.StartedNoticeTimeout)
	assert.Equal(t, "about:blank", cfg.Session.HomeURL)

	raw, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "9s")
}

func TestManager_FileAndEnvOverrides(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "browse")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[session]
home_url = "https://start.example"

[downloads]
progress_min_percent = 0
progress_min_interval = "0s"
`), 0o600))

	t.Setenv("BROWSE_LOG_LEVEL", "debug")
	t.Setenv("BROWSE_PLACES_MAX_RESULTS", "5")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://start.example", cfg.Session.HomeURL)
	assert.Zero(t, cfg.Downloads.ProgressMinPercent)
	assert.Zero(t, cfg.Downloads.ProgressMinInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Places.MaxResults)
	// Unset keys keep their defaults.
	assert.Equal(t, 15, cfg.Session.BackForwardItems)
}

func TestManager_InvalidFileFailsValidation(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "browse")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[downloads]
progress_min_percent = 150
`), 0o600))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "downloads.progress_min_percent")
}

func TestManager_WriteTOML(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var buf bytes.Buffer
	require.NoError(t, mgr.WriteTOML(&buf))
	out := buf.String()
	assert.Contains(t, out, "[downloads]")
	assert.Contains(t, out, "browse.sqlite")
	assert.Contains(t, out, "home_url")
	assert.NotContains(t, out, "auto_restore")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = "xml"
	cfg.Session.HomeURL = "  "

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, defaultHomeURL, cfg.Session.HomeURL)
}
