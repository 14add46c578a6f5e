// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconActive - иконка, когда коррекция прокрутки включена.
//
//go:embed icon_active.png
var IconActive []byte

// IconPaused - иконка на паузе (серая).
//
//go:embed icon_paused.png
var IconPaused []byte
