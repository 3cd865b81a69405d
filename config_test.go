package trellis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "trellis.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAppConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trellis.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
window = "main.json"
theme = "/themes/dark.toml"
font = "gomono"
title = "Files"
width = 800
title_bar = true
frame_rate = 0
debug = true
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "main.json"), config.Window, "relative paths follow the config file")
	assert.Equal(t, "/themes/dark.toml", config.Theme)
	assert.Equal(t, "gomono", config.Font, "builtin font names stay as they are")
	assert.Equal(t, "Files", config.Title)
	assert.Equal(t, float32(800), config.Width)
	assert.Equal(t, float32(480), config.Height, "missing keys keep their defaults")
	assert.Equal(t, 60, config.FrameRate)
	assert.True(t, config.TitleBar)
	assert.True(t, config.Debug)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trellis.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = [\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse trellis.toml")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trellis.toml")
	config := DefaultAppConfig()
	config.Title = "Saved"
	config.FrameRate = 30
	config.Font = "goregular"

	require.NoError(t, SaveConfig(path, config))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, got)
}
