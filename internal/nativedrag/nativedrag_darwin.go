//go:build darwin && cgo

package nativedrag

/*
#cgo CFLAGS: -x objective-c -fmodules -fobjc-arc
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdint.h>
#include <stdlib.h>

@interface DragOutSource : NSObject <NSDraggingSource>
@end

@implementation DragOutSource
- (NSDragOperation)draggingSession:(NSDraggingSession *)session
    sourceOperationMaskForDraggingContext:(NSDraggingContext)context {
	return NSDragOperationCopy | NSDragOperationGeneric;
}
@end

static DragOutSource *dragOutSource;

// 1: no window, 2: no content view, 3: AppKit refused the session.
static int DragOut_beginSession(NSWindow *window, NSArray<NSString *> *paths) {
	NSView *view = [window contentView];
	if (view == nil) {
		return 2;
	}

	NSEvent *event = [NSApp currentEvent];
	if (event == nil || [event window] != window) {
		// Called outside the window's event dispatch; synthesize a drag
		// event at the pointer so AppKit has a source location.
		event = [NSEvent mouseEventWithType:NSEventTypeLeftMouseDragged
		                           location:[window mouseLocationOutsideOfEventStream]
		                      modifierFlags:0
		                          timestamp:[[NSProcessInfo processInfo] systemUptime]
		                       windowNumber:[window windowNumber]
		                            context:nil
		                        eventNumber:0
		                         clickCount:1
		                           pressure:1.0];
	}
	NSPoint at = [view convertPoint:[event locationInWindow] fromView:nil];

	NSMutableArray<NSDraggingItem *> *items = [NSMutableArray arrayWithCapacity:[paths count]];
	CGFloat offset = 0;
	for (NSString *path in paths) {
		NSURL *url = [NSURL fileURLWithPath:path];
		NSDraggingItem *item = [[NSDraggingItem alloc] initWithPasteboardWriter:url];
		NSImage *icon = [[NSWorkspace sharedWorkspace] iconForFile:path];
		[icon setSize:NSMakeSize(64, 64)];
		[item setDraggingFrame:NSMakeRect(at.x - 32 + offset, at.y - 32 - offset, 64, 64) contents:icon];
		[items addObject:item];
		offset += 6;
	}

	if (dragOutSource == nil) {
		dragOutSource = [[DragOutSource alloc] init];
	}
	NSDraggingSession *session = [view beginDraggingSessionWithItems:items event:event source:dragOutSource];
	if (session == nil) {
		return 3;
	}
	[session setAnimatesToStartingPositionsOnCancelOrFail:YES];
	return 0;
}

static int DragOut_StartDrag(uintptr_t windowPtr, const char **cpaths, int count) {
	NSMutableArray<NSString *> *paths = [NSMutableArray arrayWithCapacity:count];
	for (int i = 0; i < count; i++) {
		[paths addObject:[NSString stringWithUTF8String:cpaths[i]]];
	}

	__block int result = 1;
	void (^begin)(void) = ^{
		NSWindow *window = (__bridge NSWindow *)(void *)windowPtr;
		if (window == nil || ![window isKindOfClass:[NSWindow class]]) {
			result = 1;
			return;
		}
		result = DragOut_beginSession(window, paths);
	};

	// AppKit drag sessions must begin on the main thread.
	if ([NSThread isMainThread]) {
		begin();
	} else {
		dispatch_sync(dispatch_get_main_queue(), begin);
	}
	return result;
}
*/
import "C"
import (
	"fmt"
	"log"
	"unsafe"

	"github.com/mmilitzer/dragout/internal/drag"
)

func startDragImpl(paths []string, w drag.Window) error {
	if len(paths) == 0 {
		return drag.ErrNoPaths
	}
	if w == 0 {
		return drag.ErrInvalidWindow
	}

	cPaths := (**C.char)(C.malloc(C.size_t(len(paths)) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	defer C.free(unsafe.Pointer(cPaths))

	view := unsafe.Slice(cPaths, len(paths))
	for i, p := range paths {
		view[i] = C.CString(p)
	}
	defer func() {
		for _, cp := range view {
			C.free(unsafe.Pointer(cp))
		}
	}()

	switch rc := C.DragOut_StartDrag(C.uintptr_t(w), cPaths, C.int(len(paths))); rc {
	case 0:
		log.Printf("[nativedrag] Drag session started with %d item(s)", len(paths))
		return nil
	case 1:
		return fmt.Errorf("%w: not an NSWindow", drag.ErrInvalidWindow)
	case 2:
		return fmt.Errorf("window has no content view")
	default:
		return fmt.Errorf("AppKit refused the drag session (code %d)", int(rc))
	}
}
