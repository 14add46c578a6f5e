//go:build linux

package autostart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDesktopEntry(t *testing.T) {
	data, err := render([]string{"/opt/rdp scroll/rdpscroll", "--quiet"})
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "[Desktop Entry]\n")
	assert.Contains(t, s, "Exec=\"/opt/rdp scroll/rdpscroll\" --quiet\n")
	assert.Contains(t, s, "X-GNOME-Autostart-enabled=true\n")
}

func TestRenderRejectsEmptyCommand(t *testing.T) {
	_, err := render(nil)
	assert.Error(t, err)
}

func TestEntryPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "autostart", "rdpscroll.desktop"), entryPath("/home/me"))
}

func TestQuoteExec(t *testing.T) {
	assert.Equal(t, "/usr/bin/rdpscroll", quoteExec("/usr/bin/rdpscroll"))
	assert.Equal(t, `"/a b/c\$d"`, quoteExec("/a b/c$d"))
}
