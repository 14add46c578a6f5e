//go:build darwin

package workspace

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>

// copyFrontmost заполняет bundle и name строками UTF-8 из malloc.
// Возвращает 0, если фокуса нет.
static int copyFrontmost(char **bundle, char **name) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) {
            return 0;
        }
        NSString *bid = app.bundleIdentifier ?: @"";
        NSString *title = app.localizedName ?: @"";
        *bundle = strdup([bid UTF8String]);
        *name = strdup([title UTF8String]);
        return 1;
    }
}
*/
import "C"

import (
	"unsafe"

	"rdpscroll/internal/target"
)

func frontmost() (target.App, bool) {
	var bundle, name *C.char
	if C.copyFrontmost(&bundle, &name) == 0 {
		return target.App{}, false
	}
	defer C.free(unsafe.Pointer(bundle))
	defer C.free(unsafe.Pointer(name))

	return target.App{
		BundleID: C.GoString(bundle),
		Name:     C.GoString(name),
	}, true
}
