package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
	"rdpscroll/internal/config"
)

func TestConvert(t *testing.T) {
	mods, key, err := convert(config.HotkeyConfig{
		Modifiers: []config.Modifier{config.ModCtrl, "hyper", config.ModShift},
		Key:       "s",
	})
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyS, key)
	assert.Equal(t, []hotkey.Modifier{modifierMap[config.ModCtrl], modifierMap[config.ModShift]}, mods)
}

func TestConvertUnknownKey(t *testing.T) {
	_, _, err := convert(config.HotkeyConfig{Key: "pause"})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestRegisterDisabledHotkey(t *testing.T) {
	h := New(func() {})
	assert.NoError(t, h.Register(config.HotkeyConfig{}))
	assert.False(t, h.Current().Enabled())
	assert.NoError(t, h.Unregister())
}

func TestDefaultHotkeyIsMapped(t *testing.T) {
	_, _, err := convert(config.Default().Hotkey)
	assert.NoError(t, err)
}
