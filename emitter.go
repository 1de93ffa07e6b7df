package logcall

import (
	"log/slog"

	"github.com/llskyhi/log-call/pkg/logging"
)

// Emitter is the sink the wrapper hands its records to. The wrapper never
// formats or persists log output itself.
//
// callerSkip is the number of stack frames above Emit's caller that belong
// to the instrumentation; an implementation that attributes records to a
// source location must skip that many frames so the record points at the
// wrapped call's call site. callerSkip 0 means Emit's caller.
type Emitter interface {
	Emit(logger string, level slog.Level, msg string, callerSkip int)
}

// EmitterFunc adapts a plain function to the Emitter interface. The
// adapter's Emit frame sits between the wrapper and f, so an f that
// resolves caller frames itself sees callerSkip anchored one frame deeper
// and must add that extra frame to its own skip count.
type EmitterFunc func(logger string, level slog.Level, msg string, callerSkip int)

func (f EmitterFunc) Emit(logger string, level slog.Level, msg string, callerSkip int) {
	f(logger, level, msg, callerSkip)
}

// registryEmitter routes records through the process-wide named-logger
// registry. logging.Emit anchors callerSkip at its own caller, which is
// this method rather than the wrapper, so the method counts its frame in.
type registryEmitter struct{}

func (registryEmitter) Emit(logger string, level slog.Level, msg string, callerSkip int) {
	logging.Emit(logger, level, msg, callerSkip+1)
}

var defaultEmitter Emitter = registryEmitter{}
