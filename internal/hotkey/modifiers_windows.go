//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"
	"rdpscroll/internal/config"
)

// modifierMap - модификаторы горячей клавиши переключения Active (Windows).
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.ModAlt,
	config.ModSuper: hotkey.ModWin,
}
