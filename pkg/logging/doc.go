// Package logging provides named, leveled loggers on top of Go's slog
// package, plus the factory and configuration machinery the instrumentation
// core delegates its log output to.
//
// The package has two layers:
//
//   - A factory (New, NewHandler) that builds a slog handler or logger
//     from functional options: output format (text or json), minimum level,
//     output destination, static attributes, source attribution, and
//     ContextExtractor callbacks that inject attributes pulled from a
//     context value on every record.
//
//   - A process-wide registry of named loggers (Get, SetLevel, Configure)
//     in the spirit of classic logging frameworks that hand out loggers by
//     dotted name. Every named logger tags its records with a "logger"
//     attribute and carries its own dynamically adjustable level, while
//     sharing the registry's base handler for formatting and output.
//
// # Usage
//
//	import "github.com/llskyhi/log-call/pkg/logging"
//
//	func main() {
//	    logging.Configure(
//	        logging.WithTextFormatter(),
//	        logging.WithLevel(slog.LevelDebug),
//	        logging.WithAddSource(true),
//	    )
//	    log := logging.Get("app.orders")
//	    log.Info("checkout complete", logging.Elapsed(dur))
//	}
//
// # Record emission with caller attribution
//
// Emit writes a message to a named logger while attributing the record's
// source location to a frame further up the stack. This is what lets the
// instrumentation core log on behalf of a wrapped call so that the record
// points at the call site rather than at the wrapper:
//
//	logging.Emit("app.orders", slog.LevelDebug, "checkout(42) started", skip)
//
// # Environment bootstrap
//
// Bootstrap configures the registry from the environment (loading a .env
// file first when one is present): LOGCALL_LOG_LEVEL, LOGCALL_LOG_FORMAT,
// LOGCALL_LOG_SOURCE, and LOGCALL_LOG_LEVELS_FILE, the last naming a YAML
// file mapping logger names to levels:
//
//	loggers:
//	  app.http: info
//	  app.worker: warn
package logging
