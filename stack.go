package logcall

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

const (
	unknownCaller = "(unknown caller)"
	unknownStack  = "(unknown stack)"

	// maxStackDepth bounds a snapshot; chains deeper than this are truncated.
	maxStackDepth = 64
)

// internalPkgPath is this package's import path, resolved at runtime so the
// frame filter keeps working if the module gets forked under another path.
var internalPkgPath = reflect.TypeOf(invocation{}).PkgPath()

// stackSnapshot is an immutable capture of the active call chain at the
// moment a wrapped call began. It is consumed only for diagnostic
// formatting.
type stackSnapshot struct {
	pcs []uintptr
}

// captureStack records the program counters above its caller's caller, i.e.
// everything from the wrapper's entry point upward. Instrumentation-internal
// frames are kept in the snapshot and filtered out when walking.
func captureStack() *stackSnapshot {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(3, pcs[:]) // runtime.Callers, captureStack, invoke
	snap := &stackSnapshot{pcs: make([]uintptr, n)}
	copy(snap.pcs, pcs[:n])
	return snap
}

// walk visits the snapshot's frames most-recent-first, skipping frames that
// belong to the instrumentation itself: this package, reflect's call
// machinery and the runtime. Every walk restarts from the top, so the
// filtered chain can be consumed any number of times.
func (s *stackSnapshot) walk(yield func(fn string, line int) bool) {
	if s == nil || len(s.pcs) == 0 {
		return
	}
	frames := runtime.CallersFrames(s.pcs)
	for {
		frame, more := frames.Next()
		if frame.PC != 0 && !isInternalFrame(frame.Function) {
			if !yield(frameName(frame.Function), frame.Line) {
				return
			}
		}
		if !more {
			return
		}
	}
}

// leadingInternal counts the machinery frames at the top of the snapshot,
// between the wrapper's entry point and the frame that actually issued the
// call. The count varies with how the proxy was invoked (typed proxy vs
// direct Call), so it is measured rather than hard-coded.
func (s *stackSnapshot) leadingInternal() int {
	if s == nil || len(s.pcs) == 0 {
		return 0
	}
	frames := runtime.CallersFrames(s.pcs)
	n := 0
	for {
		frame, more := frames.Next()
		if !isInternalFrame(frame.Function) {
			return n
		}
		n++
		if !more {
			return n
		}
	}
}

func isInternalFrame(fn string) bool {
	return fn == "" ||
		strings.HasPrefix(fn, internalPkgPath+".") ||
		strings.HasPrefix(fn, "reflect.") ||
		strings.HasPrefix(fn, "runtime.")
}

// frameName normalizes a runtime function name for display. Names from the
// runtime are already package-qualified; method-value thunks carry a "-fm"
// suffix added by the compiler that means nothing to a reader.
func frameName(fn string) string {
	if fn == "" {
		return unknownName
	}
	return strings.TrimSuffix(fn, "-fm")
}

// formatCaller names the nearest call site outside the instrumentation as
// "qualifiedName:line".
func formatCaller(s *stackSnapshot) string {
	caller := unknownCaller
	s.walk(func(fn string, line int) bool {
		caller = fn + ":" + strconv.Itoa(line)
		return false
	})
	return caller
}

// formatOneLineStack joins the filtered caller chain most-recent-first.
// A single line reads better than a full traceback when the failure is
// caught and handled above the wrapped call, and keeps nested wrapped calls
// from each dumping a multi-line trace.
func formatOneLineStack(s *stackSnapshot) string {
	var b strings.Builder
	s.walk(func(fn string, line int) bool {
		if b.Len() > 0 {
			b.WriteString(" <- ")
		}
		b.WriteString(fn)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(line))
		return true
	})
	if b.Len() == 0 {
		return unknownStack
	}
	return b.String()
}
