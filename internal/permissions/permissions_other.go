//go:build !darwin

package permissions

// Проверка прав есть только в macOS.
func check(bool) Status {
	return StatusUnavailable
}
