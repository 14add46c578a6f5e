// Package workspace определяет приложение в фокусе.
package workspace

import "rdpscroll/internal/target"

// Workspace запрашивает у оконного сервера активное приложение.
type Workspace struct{}

// New возвращает Workspace для текущей платформы.
func New() *Workspace {
	return &Workspace{}
}

// Frontmost возвращает приложение в фокусе. ok=false, если платформа не
// может ответить или фокуса нет.
func (w *Workspace) Frontmost() (target.App, bool) {
	return frontmost()
}
