package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultListen, cfg.ListenAddr())
	assert.True(t, cfg.FileLogging())
	assert.False(t, cfg.NoColor)
}

func TestLoadConfigParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	configYAML := strings.TrimSpace(`
listen: 0.0.0.0:9000
no_color: true
log_to_file: false
`)
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr())
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.FileLogging())
}

func TestLoadConfigRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0644))
	_, err := LoadConfigFrom(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	off := false
	require.NoError(t, SaveConfigTo(path, Config{Listen: "localhost:1234", LogToFile: &off}))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:1234", cfg.Listen)
	require.NotNil(t, cfg.LogToFile)
	assert.False(t, *cfg.LogToFile)
}

func TestSaveConfigUsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	require.NoError(t, SaveConfig(Config{Listen: "localhost:4321"}))
	p, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, dir))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:4321", cfg.ListenAddr())
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := ResolvePath("~/lists/a.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "lists", "a.json"), p)

	p, err = ResolvePath("/abs/a.json")
	require.NoError(t, err)
	assert.Equal(t, "/abs/a.json", p)

	p, err = ResolvePath("rel/a.json")
	require.NoError(t, err)
	assert.Equal(t, "rel/a.json", p)
}
