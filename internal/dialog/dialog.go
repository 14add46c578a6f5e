// Package dialog предоставляет блокирующие GUI диалоги.
package dialog

import (
	"github.com/ncruces/zenity"
	"rdpscroll/internal/i18n"
)

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}

// ShowTapError сообщает, что перехват событий не создан и прокрутка не
// корректируется до перезапуска с выданными правами.
func ShowTapError() {
	zenity.Error(i18n.T("dialog_tap_error"),
		zenity.Title(i18n.T("dialog_tap_error_title")),
		zenity.ErrorIcon,
	)
}
