package logcall

import "log/slog"

// DefaultLoggerName is the logger records go to when WithLoggerName is not
// supplied. It matches this package's name, the way loggers are convention-
// ally named after the module that owns them.
const DefaultLoggerName = "logcall"

// DefaultIndentMarker is repeated once per nesting level below the top to
// indent records of nested wrapped calls.
const DefaultIndentMarker = "- "

// Option configures wrapper construction. Invalid configuration is rejected
// when the wrapper is built, not on first call.
type Option func(*config)

type config struct {
	loggerName   string
	level        slog.Level
	emitter      Emitter
	indentMarker string
}

func defaultConfig() *config {
	return &config{
		loggerName:   DefaultLoggerName,
		level:        slog.LevelDebug,
		emitter:      defaultEmitter,
		indentMarker: DefaultIndentMarker,
	}
}

func (c *config) validate() error {
	if c.loggerName == "" {
		return ErrEmptyLoggerName
	}
	if c.emitter == nil {
		return ErrNilEmitter
	}
	if c.indentMarker == "" {
		return ErrEmptyIndentMarker
	}
	return nil
}

// WithLoggerName routes this wrapper's records to the named logger.
func WithLoggerName(name string) Option {
	return func(c *config) { c.loggerName = name }
}

// WithLevel sets the severity both records of an invocation are emitted at.
// The default is slog.LevelDebug.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithEmitter replaces the sink records are sent to. Useful for tests and
// for routing records into a custom logging setup.
func WithEmitter(e Emitter) Option {
	return func(c *config) { c.emitter = e }
}

// WithIndentMarker replaces the marker repeated to indent nested records.
func WithIndentMarker(marker string) Option {
	return func(c *config) { c.indentMarker = marker }
}
