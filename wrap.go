package logcall

// Wrap returns an instrumented proxy with the identical static type as fn.
// The proxy forwards arguments, results and panics to and from fn unchanged
// and emits an entered/exited record pair around every invocation.
//
// With no options it logs to the default logger at slog.LevelDebug:
//
//	add := logcall.Wrap(add)
//
// Options configure the destination and severity:
//
//	handle := logcall.Wrap(handleError,
//		logcall.WithLoggerName("app.errors"),
//		logcall.WithLevel(slog.LevelWarn),
//	)
//
// Wrap panics on misconfiguration (nil or non-func target, empty logger
// name, nil emitter); use New to handle construction errors explicitly.
func Wrap[F any](fn F, opts ...Option) F {
	w := MustNew(fn, opts...)
	return w.Interface().(F)
}

// Configured captures a set of options once and returns a wrapper-producing
// function, for wiring many targets to the same destination:
//
//	traced := logcall.Configured(
//		logcall.WithLoggerName("app.orders"),
//		logcall.WithLevel(slog.LevelInfo),
//	)
//	checkout, err := traced(svc.Checkout)
//
// The returned function validates its configuration on every target it
// wraps, exactly like New.
func Configured(opts ...Option) func(fn any) (*Wrapper, error) {
	return func(fn any) (*Wrapper, error) {
		return New(fn, opts...)
	}
}
