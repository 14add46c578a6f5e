// Package scroll превращает непрерывную прокрутку (трекпад) в дискретные шаги
// по строкам для клиентов удалённого рабочего стола, которые плохо
// обрабатывают смещения в пикселях.
//
// Engine.Handle вызывается синхронно из перехватчика на каждое событие
// и не должен блокироваться.
package scroll

import (
	"io"
	"log"
	"math"
	"sync"

	"rdpscroll/internal/target"
)

// Foreground сообщает приложение, которое сейчас в фокусе.
type Foreground interface {
	Frontmost() (target.App, bool)
}

// Matcher решает, нужно ли преобразовывать прокрутку для приложения.
type Matcher interface {
	Match(app target.App) bool
}

// Reenabler снова включает перехват после отключения системой.
type Reenabler interface {
	Reenable()
}

// Engine - конечный автомат преобразования событий.
type Engine struct {
	settings   *Settings
	matcher    Matcher
	foreground Foreground
	diag       *log.Logger

	mu        sync.Mutex
	acc       Accumulator
	reenabler Reenabler
}

// Option настраивает Engine.
type Option func(*Engine)

// WithDiagnostics задаёт логгер для диагностических записей по событиям.
func WithDiagnostics(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.diag = l
		}
	}
}

// NewEngine создаёт движок, читающий настройки на каждом событии.
func NewEngine(settings *Settings, matcher Matcher, foreground Foreground, opts ...Option) *Engine {
	e := &Engine{
		settings:   settings,
		matcher:    matcher,
		foreground: foreground,
		diag:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetReenabler подключает перехватчик после его создания.
func (e *Engine) SetReenabler(r Reenabler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reenabler = r
}

// Accumulated возвращает смещение, перенесённое на следующее событие.
func (e *Engine) Accumulated() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Value()
}

// Handle решает судьбу одного перехваченного события. Само событие не
// изменяется; PassThrough означает вернуть его как есть.
func (e *Engine) Handle(ev Event) Decision {
	if ev.Kind == KindTapDisabled {
		e.reenable()
		return Decision{Action: PassThrough}
	}

	active, level := e.settings.snapshot()
	if !active {
		return Decision{Action: PassThrough}
	}
	if ev.Kind != KindScrollWheel {
		return Decision{Action: PassThrough}
	}
	// Обычное колесо с щелчками и так работает правильно.
	if !ev.Continuous {
		return Decision{Action: PassThrough}
	}

	app, ok := e.frontmost()
	if !ok || !e.matcher.Match(app) {
		return Decision{Action: PassThrough}
	}

	delta := ev.Axis1
	if delta == 0 {
		delta = ev.Axis2
	}
	if delta == 0 {
		return Decision{Action: PassThrough}
	}

	e.diag.Printf("INPUT: DeltaY=%d (continuous) app=%s", delta, app.BundleID)

	threshold := Threshold(level)

	e.mu.Lock()
	before := e.acc.Value() + float64(delta)
	steps := e.acc.Add(float64(delta), threshold)
	clamped := clampSteps(steps)
	if int64(clamped) != steps {
		// остаток, не влезающий в int32, ждёт следующих событий
		e.acc.carry(float64(steps-int64(clamped)) * threshold)
	}
	residual := e.acc.Value()
	e.mu.Unlock()

	if clamped == 0 {
		return Decision{Action: Suppress}
	}

	e.diag.Printf("ACTION: InputDelta=%d -> Accum=%g -> Steps=%d residual=%g", delta, before, clamped, residual)
	return Decision{
		Action:      Emit,
		Synthesized: newSynthesized(ev, clamped),
	}
}

// clampSteps ограничивает число шагов диапазоном поля события.
func clampSteps(steps int64) int32 {
	switch {
	case steps > math.MaxInt32:
		return math.MaxInt32
	case steps < math.MinInt32:
		return math.MinInt32
	default:
		return int32(steps)
	}
}

func (e *Engine) frontmost() (target.App, bool) {
	if e.foreground == nil {
		return target.App{}, false
	}
	return e.foreground.Frontmost()
}

func (e *Engine) reenable() {
	e.mu.Lock()
	r := e.reenabler
	e.mu.Unlock()
	if r != nil {
		r.Reenable()
	}
}
