// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "RDP Scroll Fixer",
		"app_tooltip": "RDP Scroll Fixer - smooth scrolling for Remote Desktop",

		// Tray menu
		"tray_status_active":    "Correcting scroll",
		"tray_status_paused":    "Paused",
		"tray_active":           "Active",
		"tray_active_hint":      "Convert trackpad scrolling in Remote Desktop",
		"tray_sensitivity":      "Sensitivity",
		"tray_sensitivity_hint": "Trackpad distance per scroll line",
		"tray_level":            "Level %d",
		"tray_autostart":        "Autostart",
		"tray_autostart_hint":   "Start at login",
		"tray_quit":             "Quit",
		"tray_quit_hint":        "Close application",

		// Notifications
		"notify_active":          "Active",
		"notify_active_hint":     "Trackpad scrolling is converted to lines",
		"notify_paused":          "Paused",
		"notify_paused_hint":     "Scroll events pass through unchanged",
		"notify_autostart":       "Autostart",
		"notify_autostart_on":    "Added to login items",
		"notify_autostart_off":   "Removed from login items",
		"notify_permission":      "Accessibility permission required",
		"notify_permission_hint": "Grant access in System Settings, then restart",
		"notify_error":           "Error",

		// Dialogs
		"dialog_tap_error_title": "Permission Error",
		"dialog_tap_error":       "Unable to create Event Tap.\nPlease grant Accessibility permissions to this application in System Settings and restart it.",

		// Errors
		"error_autostart":       "Autostart could not be changed",
		"error_hotkey_register": "Failed to register hotkey",
	},

	RU: {
		// App
		"app_name":    "RDP Scroll Fixer",
		"app_tooltip": "RDP Scroll Fixer - плавная прокрутка в Remote Desktop",

		// Tray menu
		"tray_status_active":    "Прокрутка корректируется",
		"tray_status_paused":    "Пауза",
		"tray_active":           "Активно",
		"tray_active_hint":      "Преобразовывать прокрутку трекпада в Remote Desktop",
		"tray_sensitivity":      "Чувствительность",
		"tray_sensitivity_hint": "Путь по трекпаду на одну строку",
		"tray_level":            "Уровень %d",
		"tray_autostart":        "Автозапуск",
		"tray_autostart_hint":   "Запускать при входе",
		"tray_quit":             "Выход",
		"tray_quit_hint":        "Закрыть приложение",

		// Notifications
		"notify_active":          "Включено",
		"notify_active_hint":     "Прокрутка трекпада преобразуется в строки",
		"notify_paused":          "Пауза",
		"notify_paused_hint":     "События прокрутки передаются без изменений",
		"notify_autostart":       "Автозапуск",
		"notify_autostart_on":    "Добавлено в автозагрузку",
		"notify_autostart_off":   "Удалено из автозагрузки",
		"notify_permission":      "Нужны права Accessibility",
		"notify_permission_hint": "Выдайте доступ в Системных настройках и перезапустите",
		"notify_error":           "Ошибка",

		// Dialogs
		"dialog_tap_error_title": "Ошибка доступа",
		"dialog_tap_error":       "Не удалось создать перехват событий.\nВыдайте приложению права Accessibility в Системных настройках и перезапустите его.",

		// Errors
		"error_autostart":       "Не удалось изменить автозапуск",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if s, ok := translations[current][key]; ok {
		return s
	}
	if s, ok := translations[EN][key]; ok {
		return s
	}
	// Fallback to key itself
	return key
}

// Tf formats the translation for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) bool {
	if _, ok := translations[lang]; !ok {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	current = lang
	return true
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}
