// Package logfather is a lightweight, embeddable leveled logger with
// terminal and file sinks.
//
// # Levels
//
// Severities are ordered TRACE < DEBUG < INFO < WARNING < ERROR < CRITICAL.
// DIAG is an out-of-band diagnostic tag: it bypasses the minimum-level gate
// and, together with DEBUG, is compiled out of release builds (build with
// -tags release).
//
// # Usage
//
// The package-level call sites log through a shared default logger that
// works out of the box (terminal on, file off, minimum level TRACE):
//
//	logfather.Errorf("boom: %v", err)
//
// Configuration chains on a logger instance:
//
//	l := logfather.New().
//		File(true).
//		Path("log.txt").
//		MinLevel(logfather.ErrorLevel).
//		Ignore(logfather.WarnLevel)
//	logfather.SetDefault(l)
//
// Instances can also be kept and injected directly; every call site exists
// as a Logger method too.
//
// # Formatting
//
// The message template recognizes {timestamp}, {module_path}, {level} and
// {message}; unknown placeholders pass through literally. Per-level styles
// (github.com/fatih/color) apply to the terminal sink only; the file sink is
// always plain text so log files stay parseable. Styles honor NO_COLOR and
// non-terminal output via the color package's global toggles.
//
// # Fallible call sites
//
// The R-prefixed variants (RInfof, RErrorf, ...) return the first sink
// error instead of swallowing it. The plain variants never propagate a
// failure and still attempt every remaining sink when one fails.
//
// # Environment
//
// FromEnv builds a logger from the LOGFATHER_* variables, e.g.
//
//	LOGFATHER_LEVEL=error LOGFATHER_FILE=app.log ./myapp
//
// All configuration and dispatch is serialized by a single mutex per
// logger, so concurrent call sites never interleave partial lines.
package logfather
