//go:build linux

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// XDG autostart: $XDG_CONFIG_HOME/autostart или ~/.config/autostart.
func entryPath(home string) string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "autostart", "rdpscroll.desktop")
}

func render(args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("пустая команда запуска")
	}

	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteExec(a)
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=RDP Scroll Fixer\n")
	b.WriteString("Exec=" + strings.Join(quoted, " ") + "\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	b.WriteString("X-Label=" + Label + "\n")
	return []byte(b.String()), nil
}

// quoteExec экранирует аргумент по правилам ключа Exec.
func quoteExec(arg string) string {
	if !strings.ContainsAny(arg, " \t\"'\\$`") {
		return arg
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(arg) + `"`
}
