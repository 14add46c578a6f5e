// Package hotkey предоставляет глобальную горячую клавишу переключения
// режима Active.
package hotkey

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
	"rdpscroll/internal/config"
)

// debounceInterval - защита от key repeat.
const debounceInterval = 300 * time.Millisecond

// ErrUnknownKey - клавиша из конфигурации не поддерживается.
var ErrUnknownKey = errors.New("неизвестная клавиша")

// Handler обрабатывает нажатия горячей клавиши.
type Handler struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	onPress func()
	current config.HotkeyConfig
	stopCh  chan struct{}
}

// New создаёт обработчик горячей клавиши.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register регистрирует горячую клавишу, снимая предыдущую.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	if err := h.Unregister(); err != nil {
		log.Printf("Ошибка снятия горячей клавиши: %v", err)
	}
	if !cfg.Enabled() {
		return nil
	}

	mods, key, err := convert(cfg)
	if err != nil {
		return err
	}

	log.Printf("Регистрация горячей клавиши: %s", cfg.String())

	h.mu.Lock()
	defer h.mu.Unlock()

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("регистрация %s: %w", cfg.String(), err)
	}

	h.hk = hk
	h.current = cfg
	h.stopCh = make(chan struct{})
	go h.listen(hk, h.stopCh)
	return nil
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var lastKeydown time.Time
	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		}
	}
}

// Unregister отменяет регистрацию горячей клавиши.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}

	if h.hk != nil {
		err := h.hk.Unregister()
		h.hk = nil
		h.current = config.HotkeyConfig{}
		return err
	}
	return nil
}

// Current возвращает текущую зарегистрированную горячую клавишу.
func (h *Handler) Current() config.HotkeyConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// convert переводит конфигурацию в типы golang.design/x/hotkey.
// Неизвестные модификаторы пропускаются.
func convert(cfg config.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		if mod, ok := modifierMap[m]; ok {
			mods = append(mods, mod)
		}
	}

	key, ok := keyMap[cfg.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKey, cfg.Key)
	}
	return mods, key, nil
}

// modifierMap определён в platform-specific файлах:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap маппинг config.Key -> hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	"space": hotkey.KeySpace,
	"a":     hotkey.KeyA,
	"b":     hotkey.KeyB,
	"c":     hotkey.KeyC,
	"d":     hotkey.KeyD,
	"e":     hotkey.KeyE,
	"f":     hotkey.KeyF,
	"g":     hotkey.KeyG,
	"h":     hotkey.KeyH,
	"i":     hotkey.KeyI,
	"j":     hotkey.KeyJ,
	"k":     hotkey.KeyK,
	"l":     hotkey.KeyL,
	"m":     hotkey.KeyM,
	"n":     hotkey.KeyN,
	"o":     hotkey.KeyO,
	"p":     hotkey.KeyP,
	"q":     hotkey.KeyQ,
	"r":     hotkey.KeyR,
	"s":     hotkey.KeyS,
	"t":     hotkey.KeyT,
	"u":     hotkey.KeyU,
	"v":     hotkey.KeyV,
	"w":     hotkey.KeyW,
	"x":     hotkey.KeyX,
	"y":     hotkey.KeyY,
	"z":     hotkey.KeyZ,
	"f1":    hotkey.KeyF1,
	"f2":    hotkey.KeyF2,
	"f3":    hotkey.KeyF3,
	"f4":    hotkey.KeyF4,
	"f5":    hotkey.KeyF5,
	"f6":    hotkey.KeyF6,
	"f7":    hotkey.KeyF7,
	"f8":    hotkey.KeyF8,
	"f9":    hotkey.KeyF9,
	"f10":   hotkey.KeyF10,
	"f11":   hotkey.KeyF11,
	"f12":   hotkey.KeyF12,
}
