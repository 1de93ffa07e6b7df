package logging

import (
	"context"
	"log/slog"
	"sync"
)

// levelFloor is the level the registry's base handler is built with. The
// base handler must never gate a record on its own: per-logger levels are
// the single source of truth, so a name can be turned down to debug even
// when the registry default is info.
const levelFloor = slog.Level(-64)

// loggerRegistry hands out process-wide named loggers. Each name gets one
// logger for the lifetime of the process; reconfiguring the registry takes
// effect on loggers that were already handed out, since their handlers
// resolve the base handler dynamically.
type loggerRegistry struct {
	mu        sync.RWMutex
	base      slog.Handler
	defLevel  slog.Level
	loggers   map[string]*slog.Logger
	levels    map[string]*slog.LevelVar
	overrides map[string]bool // names whose level was set explicitly
}

var reg = newRegistry()

func newRegistry() *loggerRegistry {
	r := &loggerRegistry{
		defLevel:  slog.LevelInfo,
		loggers:   make(map[string]*slog.Logger),
		levels:    make(map[string]*slog.LevelVar),
		overrides: make(map[string]bool),
	}
	cfg := defaultConfig()
	cfg.level = levelFloor
	r.base = buildHandler(cfg)
	return r
}

// Get returns the logger registered under name, building it on first use.
// The logger tags every record with a "logger" attribute and is gated by its
// own adjustable level, which starts at the registry default.
func Get(name string) *slog.Logger {
	reg.mu.RLock()
	if l, ok := reg.loggers[name]; ok {
		reg.mu.RUnlock()
		return l
	}
	reg.mu.RUnlock()

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if l, ok := reg.loggers[name]; ok {
		return l
	}
	lv, ok := reg.levels[name]
	if !ok {
		lv = new(slog.LevelVar)
		lv.Set(reg.defLevel)
		reg.levels[name] = lv
	}
	l := slog.New(&namedHandler{name: name, level: lv})
	reg.loggers[name] = l
	return l
}

// SetLevel adjusts the level of the named logger, creating its level slot if
// the logger has not been requested yet. Explicitly set levels survive
// Configure.
func SetLevel(name string, level slog.Level) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	lv, ok := reg.levels[name]
	if !ok {
		lv = new(slog.LevelVar)
		reg.levels[name] = lv
	}
	lv.Set(level)
	reg.overrides[name] = true
}

// LevelOf reports the current level of the named logger, or the registry
// default if the name is unknown.
func LevelOf(name string) slog.Level {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if lv, ok := reg.levels[name]; ok {
		return lv.Level()
	}
	return reg.defLevel
}

// Configure rebuilds the registry's base handler from the options and makes
// the configured level the default for all names. Levels set explicitly via
// SetLevel are preserved; everything else follows the new default. Loggers
// already handed out pick up the new handler on their next record.
func Configure(opts ...Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	level, ok := cfg.level.(slog.Level)
	if !ok {
		level = cfg.level.Level()
	}
	cfg.level = levelFloor

	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.base = buildHandler(cfg)
	reg.defLevel = level
	for name, lv := range reg.levels {
		if !reg.overrides[name] {
			lv.Set(level)
		}
	}
}

// Reset drops every named logger, level and override and restores the
// default base handler. Only intended for tests.
func Reset() {
	fresh := newRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.base = fresh.base
	reg.defLevel = fresh.defLevel
	reg.loggers = fresh.loggers
	reg.levels = fresh.levels
	reg.overrides = fresh.overrides
}

// namedHandler gates records by its own level and delegates formatting to
// the registry's current base handler, so Configure affects loggers that
// already exist. Attribute and group derivations are replayed on top of the
// base handler per record; named loggers favor reconfigurability over the
// last bit of throughput.
type namedHandler struct {
	name  string
	level *slog.LevelVar
	mods  []func(slog.Handler) slog.Handler
}

func (h *namedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *namedHandler) Handle(ctx context.Context, rec slog.Record) error {
	reg.mu.RLock()
	base := reg.base
	reg.mu.RUnlock()
	for _, mod := range h.mods {
		base = mod(base)
	}
	rec.AddAttrs(slog.String("logger", h.name))
	return base.Handle(ctx, rec)
}

func (h *namedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *namedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *namedHandler) derive(mod func(slog.Handler) slog.Handler) slog.Handler {
	mods := make([]func(slog.Handler) slog.Handler, 0, len(h.mods)+1)
	mods = append(mods, h.mods...)
	mods = append(mods, mod)
	return &namedHandler{name: h.name, level: h.level, mods: mods}
}
