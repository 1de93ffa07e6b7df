package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents handler output format.
type Format string

const (
	// FormatJSON outputs structured records for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable records for development.
	FormatText Format = "text"
)

// Option configures handler construction.
type Option func(*config)

type config struct {
	level       slog.Leveler
	format      Format
	output      io.Writer
	attrs       []slog.Attr
	addSource   bool
	replaceAttr func(groups []string, a slog.Attr) slog.Attr
	extractors  []ContextExtractor
}

// defaultConfig favors development readability: text format at info level on
// stderr, with source attribution on so records point at real call sites.
func defaultConfig() *config {
	return &config{
		level:     slog.LevelInfo,
		format:    FormatText,
		output:    os.Stderr,
		addSource: true,
	}
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelVar wires a shared LevelVar so the handler's level can be
// adjusted after construction.
func WithLevelVar(v *slog.LevelVar) Option {
	return func(c *config) {
		if v != nil {
			c.level = v
		}
	}
}

// WithFormat sets output format.
// Panics for invalid formats to enforce fail-fast initialization - a
// misconfigured process should refuse to start rather than log garbage.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithAddSource controls whether records carry their source location.
func WithAddSource(add bool) Option {
	return func(c *config) { c.addSource = add }
}

// WithReplaceAttr installs an attribute rewrite hook, e.g. for redaction or
// renaming. Nil hooks are ignored.
func WithReplaceAttr(fn func(groups []string, a slog.Attr) slog.Attr) Option {
	return func(c *config) {
		if fn != nil {
			c.replaceAttr = fn
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes
// from context. Nil extractors are filtered out to prevent runtime panics.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue is a convenience wrapper adding an extractor that copies
// a context value into every record under the given attribute name.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// NewHandler builds a slog.Handler from the options: the format-specific
// base handler, wrapped with the context-extractor decorator when any
// extractors are registered.
func NewHandler(opts ...Option) slog.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return buildHandler(cfg)
}

// New builds a ready-to-use slog.Logger. For named, dynamically leveled
// loggers use the registry's Get instead.
func New(opts ...Option) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

func buildHandler(cfg *config) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		AddSource:   cfg.addSource,
		ReplaceAttr: cfg.replaceAttr,
	}
	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		handler = NewContextHandler(handler, cfg.extractors...)
	}
	return handler
}
