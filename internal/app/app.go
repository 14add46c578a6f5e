// Package app связывает движок прокрутки с перехватом событий, меню и
// остальным окружением.
package app

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"rdpscroll/internal/autostart"
	"rdpscroll/internal/config"
	"rdpscroll/internal/diag"
	"rdpscroll/internal/dialog"
	"rdpscroll/internal/hotkey"
	"rdpscroll/internal/i18n"
	"rdpscroll/internal/notify"
	"rdpscroll/internal/permissions"
	"rdpscroll/internal/scroll"
	"rdpscroll/internal/tap"
	"rdpscroll/internal/target"
	"rdpscroll/internal/tray"
	"rdpscroll/internal/workspace"
)

// tapStopTimeout - сколько ждать остановки перехвата при выходе.
const tapStopTimeout = time.Second

// App представляет главное приложение.
type App struct {
	mu        sync.Mutex
	config    *config.Config
	settings  *scroll.Settings
	engine    *scroll.Engine
	tap       *tap.Tap
	autostart *autostart.Manager
	notifier  *notify.Notifier
	tray      *tray.Tray
	hotkey    *hotkey.Handler
	diag      *log.Logger
	diagFile  io.Closer

	ctx     context.Context
	cancel  context.CancelFunc
	tapDone chan struct{}
	closed  bool
}

// New создаёт приложение.
func New(cfg *config.Config, version string) (*App, error) {
	diagLog, diagFile, err := diag.Open(cfg.LogFile)
	if err != nil {
		log.Printf("Диагностический лог недоступен, пишем в stderr: %v", err)
	}
	diagLog.Printf("Application started (version %s)", version)

	var observers []target.Observer
	if cfg.Diagnostics {
		observers = append(observers, target.NewFamilyDetector(diagLog))
	}

	settings := scroll.NewSettings()
	engine := scroll.NewEngine(settings,
		target.NewDefaultFilter(observers...),
		workspace.New(),
		scroll.WithDiagnostics(diagLog),
	)

	t := tap.New(engine, diagLog)
	engine.SetReenabler(t)

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config:   cfg,
		settings: settings,
		engine:   engine,
		tap:      t,
		notifier: notify.New(cfg.Notifications),
		diag:     diagLog,
		diagFile: diagFile,
		ctx:      ctx,
		cancel:   cancel,
	}

	app.autostart, err = autostart.New()
	if err != nil {
		log.Printf("Автозапуск недоступен: %v", err)
	}

	app.hotkey = hotkey.New(app.onHotkeyPress)

	app.tray = tray.New(tray.State{
		Active:    settings.Active(),
		Level:     settings.Level(),
		Autostart: app.autostartEnabled(),
	}, tray.Callbacks{
		OnActiveToggle:    app.toggleActive,
		OnLevelSelect:     app.selectLevel,
		OnAutostartToggle: app.toggleAutostart,
	})

	return app, nil
}

// Run запускает приложение. Блокирует до выхода из меню, после чего
// освобождает ресурсы через Close.
func (a *App) Run() {
	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		if err := a.hotkey.Register(a.config.Hotkey); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}

		a.checkPermissions()
		a.startTap()
	}, a.Close)
}

func (a *App) checkPermissions() {
	status := permissions.Check(true)
	if err := status.Err(); err != nil {
		log.Printf("WARNING: %v. Перехват событий, скорее всего, не будет создан.", err)
		a.diag.Printf("WARNING: process is not trusted for Accessibility")
		a.notifier.PermissionMissing()
	}
}

// startTap запускает перехват в отдельной горутине. Ошибка создания не
// завершает процесс: меню остаётся доступным.
func (a *App) startTap() {
	a.mu.Lock()
	done := make(chan struct{})
	a.tapDone = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		err := a.tap.Start(a.ctx)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("Ошибка перехвата событий: %v", err)
		a.diag.Printf("ERROR: %v", err)
		if errors.Is(err, tap.ErrCreate) || errors.Is(err, tap.ErrUnsupported) {
			dialog.ShowTapError()
		}
	}()
}

func (a *App) toggleActive() bool {
	active := a.settings.ToggleActive()
	log.Printf("Active: %v", active)
	return active
}

func (a *App) onHotkeyPress() {
	active := a.toggleActive()
	a.tray.SetActive(active)
	a.notifier.Active(active)
}

func (a *App) selectLevel(level scroll.Level) scroll.Level {
	if a.settings.SetLevel(level) {
		log.Printf("Чувствительность: %d (порог %g)", level, scroll.Threshold(level))
	}
	return a.settings.Level()
}

func (a *App) autostartEnabled() bool {
	return a.autostart != nil && a.autostart.Enabled()
}

func (a *App) toggleAutostart() bool {
	if a.autostart == nil {
		dialog.ShowError(i18n.T("notify_error"), i18n.T("error_autostart")+": "+autostart.ErrUnsupported.Error())
		return false
	}

	enabled, err := a.autostart.Toggle()
	if err != nil {
		log.Printf("Ошибка автозапуска: %v", err)
		dialog.ShowError(i18n.T("notify_error"), i18n.T("error_autostart")+": "+err.Error())
		return a.autostart.Enabled()
	}

	log.Printf("Автозапуск: %v (%s)", enabled, a.autostart.Path())
	a.notifier.Autostart(enabled)
	return enabled
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	done := a.tapDone
	a.mu.Unlock()

	if a.hotkey != nil {
		a.hotkey.Unregister()
	}

	a.cancel()
	if done != nil {
		select {
		case <-done:
		case <-time.After(tapStopTimeout):
			log.Printf("Перехват событий не остановился за %v", tapStopTimeout)
		}
	}

	if a.diagFile != nil {
		a.diagFile.Close()
	}
}
