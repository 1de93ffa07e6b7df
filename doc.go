// Package logcall instruments call boundaries: it wraps a func value so that
// every invocation emits an "entered" record before the call and a matching
// "exited" record after it, whether the call returns or panics, without
// changing the call's observable behavior.
//
// Each invocation gets a process-unique serial number, a per-goroutine
// nesting level used to indent records, and an elapsed-time measurement.
// Records are attributed to the wrapped call's call site, not to the
// wrapper, so log output reads as if the target had logged itself.
//
// Basic Usage:
//
//	add := logcall.Wrap(func(a, b int) int { return a + b })
//	sum := add(2, 3)
//	// -> /goroutine-1 1/ main.main.func1(2, 3) started
//	// -> \goroutine-1 1\ 00:00.000004 elapsed, 5 returned
//
// Configured Usage:
//
//	handle := logcall.Wrap(handleError,
//		logcall.WithLoggerName("app.errors"),
//		logcall.WithLevel(slog.LevelWarn),
//	)
//
// Wrapping Pre-Existing Callables:
//
//	w := logcall.MustNew(svc.Lookup) // method value, already bound
//	results := w.Call("key")
//
// Method-Style Binding:
//
//	w, _ := logcall.New((*Service).Lookup) // method expression, unbound
//	bound, _ := w.Bind(svc)                // supplies svc on every call
//	bound.Call("key")
//
// Failure Handling:
//
// A panic inside the wrapped target is logged together with a one-line
// caller chain and then re-raised with the identical value. Non-nil error
// return values are ordinary return values and are rendered on the success
// path. Values whose display logic itself panics never crash the wrapper;
// rendering falls back tier by tier down to a type-only placeholder.
//
// Log emission is delegated to an Emitter. The default emitter routes
// records through the named-logger registry in pkg/logging, which is built
// on log/slog.
package logcall
