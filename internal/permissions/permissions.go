// Package permissions проверяет доверие Accessibility, без которого ОС не
// создаст перехват событий.
package permissions

import "errors"

// Status - результат проверки.
type Status string

const (
	StatusTrusted     Status = "trusted"
	StatusNotTrusted  Status = "not-trusted"
	StatusUnavailable Status = "unavailable"
)

// ErrNotTrusted - процессу не выданы права Accessibility.
var ErrNotTrusted = errors.New("accessibility permission not granted")

// Check проверяет права процесса. При prompt=true macOS показывает системный
// запрос на выдачу прав.
func Check(prompt bool) Status {
	return check(prompt)
}

// Err возвращает ошибку для статуса, nil если права есть или платформа их не
// требует.
func (s Status) Err() error {
	if s == StatusNotTrusted {
		return ErrNotTrusted
	}
	return nil
}
