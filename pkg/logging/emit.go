package logging

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Emit writes msg to the named logger at the given level, attributing the
// record's source location to a call site callerSkip frames above Emit's
// caller. callerSkip 0 attributes to Emit's caller itself.
//
// This is the entry point the instrumentation core uses: the core knows how
// many of its own frames sit between Emit and the wrapped call's call site
// and passes that count, so records read as if the call site had logged.
func Emit(name string, level slog.Level, msg string, callerSkip int) {
	logger := Get(name)
	ctx := context.Background()
	h := logger.Handler()
	if !h.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// +2 skips runtime.Callers and Emit itself.
	runtime.Callers(callerSkip+2, pcs[:])
	rec := slog.NewRecord(time.Now(), level, msg, pcs[0])
	_ = h.Handle(ctx, rec)
}
