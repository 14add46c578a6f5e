//go:build !darwin

package workspace

import "rdpscroll/internal/target"

// Исправляемые клиенты есть только в macOS.
func frontmost() (target.App, bool) {
	return target.App{}, false
}
