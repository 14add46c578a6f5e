//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static Boolean axTrusted(Boolean prompt) {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { prompt ? kCFBooleanTrue : kCFBooleanFalse };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
                                                 &kCFTypeDictionaryKeyCallBacks,
                                                 &kCFTypeDictionaryValueCallBacks);
    Boolean trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted;
}
*/
import "C"

// check спрашивает AXIsProcessTrustedWithOptions; prompt показывает системный запрос.
func check(prompt bool) Status {
	p := C.Boolean(0)
	if prompt {
		p = 1
	}
	if C.axTrusted(p) == 0 {
		return StatusNotTrusted
	}
	return StatusTrusted
}
