//go:build darwin || linux

package autostart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleCreatesAndRemovesEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents", "entry")
	m := NewWithPath(path, []string{"/Applications/RDP Scroll Fixer.app/Contents/MacOS/rdpscroll"})

	assert.False(t, m.Enabled())

	enabled, err := m.Toggle()
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.True(t, m.Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RDP Scroll Fixer.app")

	enabled, err = m.Toggle()
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, m.Enabled())
	assert.NoFileExists(t, path)
}

func TestDisableMissingEntry(t *testing.T) {
	m := NewWithPath(filepath.Join(t.TempDir(), "missing"), []string{"/bin/true"})
	assert.NoError(t, m.Disable())
}

func TestEntryPathUnderHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	p := entryPath(home)
	assert.NotEmpty(t, p)
	rel, err := filepath.Rel(home, p)
	require.NoError(t, err)
	assert.NotContains(t, rel, "..")
}
