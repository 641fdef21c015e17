// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured once with functional options and is then safe to
// share. The zero Logger discards everything, which lets library types such
// as parsers and catalogs carry an optional logger without nil checks.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("selector not found", slog.String("parameter", "gender"))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a Logger with some options overridden, and [Config]
// does the same for the package-level logger returned by [Default].
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. [ParseLevel] accepts their names in any
// case, with an optional offset such as "info+2" or "trace-1".
//
// # Output
//
// Records are written as text or JSON ([FormatText], [FormatJSON]). With
// [WithPretty] enabled (the default) text records are styled "key=value"
// lines and JSON records are indented blocks. Styling uses ANSI colors only
// when the output is a terminal. Group attributes are flattened into dotted
// keys such as "request.id".
//
// Timestamps use [WithTimeLayout], which accepts named layouts of the [time]
// package or a custom layout. The layout "none" omits timestamps.
//
// # Context
//
// Each level has a context-aware variant. Context-unaware functions use
// [DefaultContextProvider], which returns [context.TODO] by default.
package log
