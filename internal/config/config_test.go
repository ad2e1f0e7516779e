package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/magmast/sq/pkg/apply"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func useXDGConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	t.Setenv("SQ_STRATEGY", "")
	t.Setenv("SQ_LOG_LEVEL", "")
	xdg.Reload()
}

func TestLoadNoXDGFileUsesDefaults(t *testing.T) {
	useXDGConfigHome(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SQ_STRATEGY", "")
	t.Setenv("SQ_LOG_LEVEL", "")
	path := writeConfig(t, "log_level: debug\nstrategy: map\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, string(apply.StrategyMap), cfg.Strategy)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "strategy: map\n")
	t.Setenv("SQ_STRATEGY", "vectorized")
	t.Setenv("SQ_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vectorized", cfg.Strategy)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sq"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, RelPath), []byte("strategy: map\n"), 0o644))
	useXDGConfigHome(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "map", cfg.Strategy)
}

func TestLoadEmptyEnvKeepsFileValues(t *testing.T) {
	path := writeConfig(t, "strategy: map\nlog_level: warn\n")
	t.Setenv("SQ_STRATEGY", "")
	t.Setenv("SQ_LOG_LEVEL", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "map", cfg.Strategy)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadLeavesValuesUnchecked(t *testing.T) {
	t.Setenv("SQ_STRATEGY", "")
	t.Setenv("SQ_LOG_LEVEL", "")

	cfg, err := Load(writeConfig(t, "strategy: numpy\nlog_level: loud\n"))
	require.NoError(t, err)
	assert.Equal(t, "numpy", cfg.Strategy)

	_, err = cfg.Level()
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "strategy: [map\n"))
	assert.Error(t, err)
}
