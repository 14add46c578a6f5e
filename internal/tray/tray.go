// Package tray предоставляет меню в строке меню / системном трее.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
	"rdpscroll/embedded"
	"rdpscroll/internal/i18n"
	"rdpscroll/internal/scroll"
)

// State - состояние, отображаемое в меню.
type State struct {
	Active    bool
	Level     scroll.Level
	Autostart bool
}

// Callbacks содержит обработчики событий меню.
// Обработчики возвращают фактическое состояние после изменения.
type Callbacks struct {
	OnActiveToggle    func() bool
	OnLevelSelect     func(level scroll.Level) scroll.Level
	OnAutostartToggle func() bool
}

// Tray управляет иконкой и меню.
type Tray struct {
	callbacks Callbacks

	mu           sync.Mutex
	state        State
	status       *systray.MenuItem
	activeItem   *systray.MenuItem
	sensitivity  *systray.MenuItem
	levelItems   map[scroll.Level]*systray.MenuItem
	autostartBtn *systray.MenuItem
	quitBtn      *systray.MenuItem
}

// New создаёт новый Tray с начальным состоянием.
func New(initial State, callbacks Callbacks) *Tray {
	return &Tray{
		callbacks:  callbacks,
		state:      initial,
		levelItems: make(map[scroll.Level]*systray.MenuItem),
	}
}

// Run запускает системный трей. Блокирующая функция.
// onExit вызывается после выхода из меню.
func (t *Tray) Run(onReady, onExit func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	t.mu.Lock()
	defer t.mu.Unlock()

	// Статус
	t.status = systray.AddMenuItem("", "")
	t.status.Disable()

	systray.AddSeparator()

	t.activeItem = systray.AddMenuItemCheckbox(i18n.T("tray_active"), i18n.T("tray_active_hint"), t.state.Active)

	systray.AddSeparator()

	// Чувствительность: ровно один уровень отмечен
	t.sensitivity = systray.AddMenuItem(i18n.T("tray_sensitivity"), i18n.T("tray_sensitivity_hint"))
	for _, level := range scroll.Levels() {
		item := t.sensitivity.AddSubMenuItemCheckbox(i18n.Tf("tray_level", int(level)), "", level == t.state.Level)
		t.levelItems[level] = item
		go t.handleLevel(level, item)
	}

	systray.AddSeparator()

	t.autostartBtn = systray.AddMenuItemCheckbox(i18n.T("tray_autostart"), i18n.T("tray_autostart_hint"), t.state.Autostart)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	t.renderLocked()

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.activeItem.ClickedCh:
			if t.callbacks.OnActiveToggle != nil {
				t.SetActive(t.callbacks.OnActiveToggle())
			}

		case <-t.autostartBtn.ClickedCh:
			if t.callbacks.OnAutostartToggle != nil {
				t.SetAutostart(t.callbacks.OnAutostartToggle())
			}

		case <-t.quitBtn.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (t *Tray) handleLevel(level scroll.Level, item *systray.MenuItem) {
	for range item.ClickedCh {
		if t.callbacks.OnLevelSelect != nil {
			t.SetLevel(t.callbacks.OnLevelSelect(level))
		}
	}
}

// SetActive обновляет отметку Active, статус и иконку.
func (t *Tray) SetActive(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Active = active
	t.renderLocked()
}

// SetLevel отмечает выбранный уровень чувствительности.
func (t *Tray) SetLevel(level scroll.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Level = level
	t.renderLocked()
}

// SetAutostart обновляет отметку автозапуска.
func (t *Tray) SetAutostart(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Autostart = enabled
	t.renderLocked()
}

// renderLocked синхронизирует меню с t.state. До onReady меню ещё нет.
func (t *Tray) renderLocked() {
	if t.status == nil {
		return
	}

	if t.state.Active {
		systray.SetIcon(embedded.IconActive)
		t.status.SetTitle(i18n.T("tray_status_active"))
		t.activeItem.Check()
	} else {
		systray.SetIcon(embedded.IconPaused)
		t.status.SetTitle(i18n.T("tray_status_paused"))
		t.activeItem.Uncheck()
	}

	for level, item := range t.levelItems {
		if level == t.state.Level {
			item.Check()
		} else {
			item.Uncheck()
		}
	}

	if t.state.Autostart {
		t.autostartBtn.Check()
	} else {
		t.autostartBtn.Uncheck()
	}
}
