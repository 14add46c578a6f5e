package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", c.UILanguage)
	assert.True(t, c.Notifications)
	assert.True(t, c.Diagnostics)
	assert.Equal(t, "ctrl+alt+s", c.Hotkey.String())
	assert.Equal(t, DefaultLogName, filepath.Base(c.LogFile))
	assert.Equal(t, path, c.Path())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
  "ui_language": "ru",
  "notifications": false,
  "hotkey": {"modifiers": ["super", "shift"], "key": "f9"},
  "log_file": "/var/tmp/scroll.log",
  "diagnostics": false
}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", c.UILanguage)
	assert.False(t, c.Notifications)
	assert.False(t, c.Diagnostics)
	assert.Equal(t, HotkeyConfig{Modifiers: []Modifier{ModSuper, ModShift}, Key: "f9"}, c.Hotkey)
	assert.Equal(t, "/var/tmp/scroll.log", c.LogFile)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, `{"ui_language": "ru"}`))
	require.NoError(t, err)

	assert.Equal(t, "ru", c.UILanguage)
	assert.True(t, c.Notifications)
	assert.True(t, c.Hotkey.Enabled())
}

func TestLoadEmptyHotkeyDisables(t *testing.T) {
	c, err := Load(writeConfig(t, `{"hotkey": {"modifiers": [], "key": ""}}`))
	require.NoError(t, err)
	assert.False(t, c.Hotkey.Enabled())
}

func TestLoadInvalidJSON(t *testing.T) {
	c, err := Load(writeConfig(t, `{"ui_language": `))
	assert.Error(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "en", c.UILanguage)
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	c, err := Load(writeConfig(t, `{"log_file": "~/logs/scroll.log"}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "scroll.log"), c.LogFile)
}
