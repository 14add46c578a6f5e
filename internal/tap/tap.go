// Package tap связывает движок прокрутки с глобальным перехватом событий ОС.
package tap

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"rdpscroll/internal/scroll"
)

var (
	// ErrCreate - ОС отказала в создании перехвата, обычно из-за
	// отсутствия прав Accessibility.
	ErrCreate = errors.New("unable to create event tap")
	// ErrUnsupported - на платформе нет перехвата событий.
	ErrUnsupported = errors.New("event taps are not supported on this platform")
	// ErrRunning - перехват уже запущен.
	ErrRunning = errors.New("event tap already running")
)

// Handler решает судьбу каждого перехваченного события.
type Handler interface {
	Handle(ev scroll.Event) scroll.Decision
}

// Tap владеет точкой перехвата и её run loop.
type Tap struct {
	handler Handler
	diag    *log.Logger

	mu      sync.Mutex
	running bool
	sys     sysTap
}

// New создаёт перехват, передающий события в handler. Отправленные события
// пишутся в diag, если он не nil.
func New(handler Handler, diag *log.Logger) *Tap {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Tap{
		handler: handler,
		diag:    diag,
	}
}

// Start устанавливает перехват и обрабатывает события в отдельном потоке ОС
// до отмены ctx. Если перехват создать нельзя, сразу возвращает ErrCreate.
func (t *Tap) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return ErrRunning
	}
	t.running = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	return t.run(ctx)
}

// Running сообщает, работает ли run loop.
func (t *Tap) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Reenable снова включает перехват после отключения системой.
// Повторный вызов для включённого перехвата безопасен.
func (t *Tap) Reenable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sys.enable()
}

// dispatch вызывает обработчик и отправляет синтезированное событие.
// Возвращает true, если исходное событие нужно отбросить.
func (t *Tap) dispatch(ev scroll.Event, post func(scroll.Synthesized)) bool {
	d := t.handler.Handle(ev)
	switch d.Action {
	case scroll.PassThrough:
		return false
	case scroll.Emit:
		post(d.Synthesized)
		t.diag.Printf("ACTION: Posted scroll steps=%d at (%.1f, %.1f)",
			d.Synthesized.Steps, d.Synthesized.Location.X, d.Synthesized.Location.Y)
		return true
	default:
		return true
	}
}
