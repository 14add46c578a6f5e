//go:build darwin

package tap

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

extern int goScrollCallback(uintptr_t handle, int kind, CGEventRef event);

enum {
    kindOther = 0,
    kindScroll = 1,
    kindDisabled = 2,
};

static int classify(CGEventType type) {
    switch (type) {
    case kCGEventScrollWheel:
        return kindScroll;
    case kCGEventTapDisabledByTimeout:
    // Отключение пользователем тоже снимаем: иначе прокрутка в RDP
    // ломается до перезапуска, а выключать преобразование нужно через Active.
    case kCGEventTapDisabledByUserInput:
        return kindDisabled;
    default:
        return kindOther;
    }
}

static CGEventRef scrollTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo) {
    if (goScrollCallback((uintptr_t)userInfo, classify(type), event)) {
        return NULL;
    }
    return event;
}

// Перехват на уровне HID: на уровне сессии прокрутка трекпада на некоторых
// машинах с Apple Silicon не приходит.
static CFRunLoopSourceRef createScrollTap(uintptr_t handle, CFMachPortRef *tapOut) {
    CFMachPortRef tap = CGEventTapCreate(kCGHIDEventTap,
                                         kCGHeadInsertEventTap,
                                         kCGEventTapOptionDefault,
                                         CGEventMaskBit(kCGEventScrollWheel),
                                         scrollTapCallback,
                                         (void *)handle);
    if (tap == NULL) {
        return NULL;
    }
    CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
    if (source == NULL) {
        CFRelease(tap);
        return NULL;
    }
    CFRunLoopAddSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CGEventTapEnable(tap, true);
    *tapOut = tap;
    return source;
}

static void enableTap(CFMachPortRef tap) {
    CGEventTapEnable(tap, true);
}

static void destroyTap(CFMachPortRef tap, CFRunLoopSourceRef source) {
    CGEventTapEnable(tap, false);
    CFRunLoopRemoveSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CFMachPortInvalidate(tap);
    CFRelease(source);
    CFRelease(tap);
}

static CFRunLoopRef currentRunLoop(void) {
    return CFRunLoopGetCurrent();
}

static void runCurrentRunLoop(void) {
    CFRunLoopRun();
}

static void stopRunLoop(CFRunLoopRef loop) {
    CFRunLoopStop(loop);
}

typedef struct {
    int continuous;
    int64_t axis1;
    int64_t axis2;
    double x;
    double y;
    uint64_t flags;
} scrollFields;

static scrollFields readScroll(CGEventRef event) {
    scrollFields f;
    CGPoint loc = CGEventGetLocation(event);
    f.continuous = CGEventGetIntegerValueField(event, kCGScrollWheelEventIsContinuous) != 0;
    f.axis1 = CGEventGetIntegerValueField(event, kCGScrollWheelEventPointDeltaAxis1);
    f.axis2 = CGEventGetIntegerValueField(event, kCGScrollWheelEventPointDeltaAxis2);
    f.x = loc.x;
    f.y = loc.y;
    f.flags = (uint64_t)CGEventGetFlags(event);
    return f;
}

// postScroll отправляет дискретное событие колеса с источником исходного
// события, чтобы получатель считал его аппаратным вводом.
static void postScroll(CGEventRef original, int pixel, int32_t steps, double x, double y, uint64_t flags) {
    CGEventSourceRef source = CGEventCreateSourceFromEvent(original);
    CGScrollEventUnit unit = pixel ? kCGScrollEventUnitPixel : kCGScrollEventUnitLine;
    CGEventRef ev = CGEventCreateScrollWheelEvent(source, unit, 1, steps);
    if (source != NULL) {
        CFRelease(source);
    }
    if (ev == NULL) {
        return;
    }
    CGEventSetLocation(ev, CGPointMake(x, y));
    CGEventSetFlags(ev, (CGEventFlags)flags);
    CGEventSetIntegerValueField(ev, kCGScrollWheelEventIsContinuous, 0);
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
}
*/
import "C"

import (
	"context"
	"runtime"
	"runtime/cgo"
	"sync"

	"rdpscroll/internal/scroll"
)

type sysTap struct {
	port C.CFMachPortRef
}

func (s *sysTap) enable() {
	if s.port != 0 {
		C.enableTap(s.port)
	}
}

func (t *Tap) run(ctx context.Context) error {
	// Источник перехвата живёт в run loop этого потока.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	handle := cgo.NewHandle(t)
	defer handle.Delete()

	var port C.CFMachPortRef
	source := C.createScrollTap(C.uintptr_t(handle), &port)
	if source == 0 {
		return ErrCreate
	}

	t.mu.Lock()
	t.sys.port = port
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.sys.port = 0
		t.mu.Unlock()
		C.destroyTap(port, source)
	}()

	loop := C.currentRunLoop()
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			C.stopRunLoop(loop)
		})
	}

	done := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	C.runCurrentRunLoop()
	close(done)
	<-watcherDone
	return ctx.Err()
}

//export goScrollCallback
func goScrollCallback(handle C.uintptr_t, kind C.int, event C.CGEventRef) C.int {
	t, ok := cgo.Handle(uintptr(handle)).Value().(*Tap)
	if !ok {
		return 0
	}

	ev := scroll.Event{Kind: eventKind(kind)}
	if ev.Kind == scroll.KindScrollWheel {
		f := C.readScroll(event)
		ev = scroll.Event{
			Kind:       scroll.KindScrollWheel,
			Continuous: f.continuous != 0,
			Axis1:      int64(f.axis1),
			Axis2:      int64(f.axis2),
			Location:   scroll.Point{X: float64(f.x), Y: float64(f.y)},
			Flags:      uint64(f.flags),
		}
	}

	drop := t.dispatch(ev, func(s scroll.Synthesized) {
		pixel := C.int(0)
		if s.Unit == scroll.UnitPixel {
			pixel = 1
		}
		C.postScroll(event, pixel, C.int32_t(s.Steps),
			C.double(s.Location.X), C.double(s.Location.Y), C.uint64_t(s.Flags))
	})
	if drop {
		return 1
	}
	return 0
}

func eventKind(kind C.int) scroll.Kind {
	switch kind {
	case C.kindDisabled:
		return scroll.KindTapDisabled
	case C.kindScroll:
		return scroll.KindScrollWheel
	default:
		return scroll.KindOther
	}
}

// classifyType - тип события CoreGraphics в терминах движка.
func classifyType(typ uint32) scroll.Kind {
	return eventKind(C.classify(C.CGEventType(typ)))
}
