// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"
	"rdpscroll/internal/i18n"
)

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Active показывает уведомление о смене режима.
func (n *Notifier) Active(active bool) {
	if active {
		n.notify(i18n.T("notify_active"), i18n.T("notify_active_hint"))
		return
	}
	n.notify(i18n.T("notify_paused"), i18n.T("notify_paused_hint"))
}

// Autostart показывает уведомление о смене автозапуска.
func (n *Notifier) Autostart(enabled bool) {
	if enabled {
		n.notify(i18n.T("notify_autostart"), i18n.T("notify_autostart_on"))
		return
	}
	n.notify(i18n.T("notify_autostart"), i18n.T("notify_autostart_off"))
}

// PermissionMissing предупреждает об отсутствии прав Accessibility.
func (n *Notifier) PermissionMissing() {
	n.notify(i18n.T("notify_permission"), i18n.T("notify_permission_hint"))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = n.send(i18n.T("app_name")+": "+title, message)
}
