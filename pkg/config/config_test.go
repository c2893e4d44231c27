package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DataDir)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.Utf8Output)
	assert.False(t, cfg.Utf8Input)
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "data_dir = \"/opt/dic\"\ncolor = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/dic", cfg.DataDir)
	assert.True(t, cfg.Color)
	// Untouched keys keep their defaults
	assert.False(t, cfg.Utf8Output)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir = \"/opt/dic\"\n"), 0o644))

	t.Setenv("SDCV_DATA_DIR", "/env/dic")
	t.Setenv("SDCV_UTF8_INPUT", "true")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/dic", cfg.DataDir)
	assert.True(t, cfg.Utf8Input)
}

func TestLoadMalformedUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = [not toml"), 0o644))

	_, err := load(path)
	assert.Error(t, err)
}
