package logging

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed records a duration under the key "elapsed".
func Elapsed(d time.Duration) slog.Attr {
	return slog.Duration("elapsed", d)
}

// Serial records an invocation serial number under the key "serial".
func Serial(n uint64) slog.Attr {
	return slog.Uint64("serial", n)
}

// Goroutine records a goroutine id under the key "goroutine".
func Goroutine(id uint64) slog.Attr {
	return slog.Uint64("goroutine", id)
}

// Component records a component name under the key "component".
// If name is empty, it returns an empty Attr.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Caller records a formatted call site under the key "caller".
// If site is empty, it returns an empty Attr.
func Caller(site string) slog.Attr {
	if site == "" {
		return slog.Attr{}
	}
	return slog.String("caller", site)
}
