package logcall

import "errors"

// Construction-time errors. All of them are reported when a wrapper is
// built, never deferred to the first call.
var (
	ErrNilTarget         = errors.New("logcall: target must be a non-nil func")
	ErrNotFunc           = errors.New("logcall: target must be a func")
	ErrEmptyLoggerName   = errors.New("logcall: logger name must not be empty")
	ErrNilEmitter        = errors.New("logcall: emitter must not be nil")
	ErrEmptyIndentMarker = errors.New("logcall: indent marker must not be empty")
)

// Binding errors returned by [Wrapper.Bind].
var (
	ErrAlreadyBound     = errors.New("logcall: wrapper is already bound")
	ErrNoReceiverParam  = errors.New("logcall: target has no leading parameter to bind")
	ErrReceiverMismatch = errors.New("logcall: receiver is not assignable to the target's first parameter")
	ErrVariadicReceiver = errors.New("logcall: cannot bind the variadic parameter as a receiver")
)
