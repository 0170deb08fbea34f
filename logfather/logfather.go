package logfather

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// DefaultFormat is the template applied to every record unless replaced via
// Format. Recognized placeholders are {timestamp}, {module_path}, {level}
// and {message}; unknown placeholders pass through literally.
const DefaultFormat = "[{timestamp} {module_path}] {level}: {message}"

// DefaultTimestampFormat is the layout used for {timestamp}.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// defaultKVFormat is appended once per key-value pair of the KV call sites.
const defaultKVFormat = " {key}={value}"

// Record is one log event: level, pre-interpolated message, timestamp and
// caller provenance. The call-site functions build records internally;
// Record is exported for the rare caller that needs to feed the dispatch
// pipeline directly via Log or RLog.
type Record struct {
	Level      Level
	Message    string
	Time       time.Time
	ModulePath string
}

// Logger filters, formats and dispatches records to the terminal and file
// sinks. A single mutex guards all configuration and the open file handle,
// so concurrent call sites never interleave partial lines and configuration
// changes never race an in-flight write.
//
// The zero value is not usable; construct with New. All configuration
// methods mutate the receiver and return it to support chaining.
type Logger struct {
	mu sync.Mutex

	terminal  bool
	file      bool
	path      string
	minLevel  Level
	ignored   map[Level]struct{}
	termSkip  map[Level]struct{}
	fileSkip  map[Level]struct{}
	format    string
	kvFormat  string
	tsFormat  string
	utc       bool
	useStderr bool
	styles    map[Level]*color.Color

	// handle is opened lazily on the first file write and held until Close
	// or a path change.
	handle *os.File

	// sink writers, swappable for tests
	stdout io.Writer
	stderr io.Writer
}

// New returns a Logger with the default configuration: terminal enabled,
// file disabled, minimum level Trace, no ignored levels, default template
// and the default per-level styles.
func New() *Logger {
	return &Logger{
		terminal: true,
		minLevel: TraceLevel,
		ignored:  map[Level]struct{}{},
		termSkip: map[Level]struct{}{},
		fileSkip: map[Level]struct{}{},
		format:   DefaultFormat,
		kvFormat: defaultKVFormat,
		tsFormat: DefaultTimestampFormat,
		styles:   defaultStyles(),
		stdout:   color.Output,
		stderr:   color.Error,
	}
}

func defaultStyles() map[Level]*color.Color {
	return map[Level]*color.Color{
		TraceLevel:    color.New(color.FgHiBlack),
		DebugLevel:    color.New(color.FgCyan),
		InfoLevel:     color.New(color.FgGreen),
		WarnLevel:     color.New(color.FgYellow),
		ErrorLevel:    color.New(color.FgRed),
		CriticalLevel: color.New(color.FgRed, color.Bold),
		DiagLevel:     color.New(color.FgMagenta),
	}
}

// defaultLogger backs the package-level call sites. Swappable via SetDefault
// for applications that construct their own instance.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the shared logger used by the package-level call sites.
func Default() *Logger { return defaultLogger.Load() }

// SetDefault replaces the shared logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// --- Configuration surface ---

// Terminal toggles the terminal sink. Enabled by default.
func (l *Logger) Terminal(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.terminal = enabled
	return l
}

// File toggles the file sink. Disabled by default. Enabling does not open
// the file; the handle is opened on the first file write and appending is
// preserved across enable/disable cycles.
func (l *Logger) File(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file = enabled
	return l
}

// Path sets the log file path. If a handle is already open it is closed
// first so no write ever reaches a stale descriptor; the new path is opened
// on the next file write.
func (l *Logger) Path(path string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle != nil {
		_ = l.handle.Close()
		l.handle = nil
	}
	l.path = path
	return l
}

// MinLevel sets the minimum severity gate. Records below it are dropped.
// DiagLevel is exempt.
func (l *Logger) MinLevel(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
	return l
}

// Ignore suppresses a level on every sink regardless of the minimum level.
// Adding an already-ignored level is a no-op.
func (l *Logger) Ignore(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ignored[level] = struct{}{}
	return l
}

// Unignore removes a level from the suppression set.
func (l *Logger) Unignore(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ignored, level)
	return l
}

// IgnoreTerminal suppresses a level on the terminal sink only.
func (l *Logger) IgnoreTerminal(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.termSkip[level] = struct{}{}
	return l
}

// UnignoreTerminal removes a level from the terminal suppression set.
func (l *Logger) UnignoreTerminal(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.termSkip, level)
	return l
}

// IgnoreFile suppresses a level on the file sink only.
func (l *Logger) IgnoreFile(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileSkip[level] = struct{}{}
	return l
}

// UnignoreFile removes a level from the file suppression set.
func (l *Logger) UnignoreFile(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.fileSkip, level)
	return l
}

// Format replaces the message template. Unknown placeholders pass through
// literally.
func (l *Logger) Format(template string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = template
	return l
}

// KVFormat replaces the per-pair template of the KV call sites. The
// placeholders {key} and {value} are substituted once per pair and the
// result is appended after the message.
func (l *Logger) KVFormat(template string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.kvFormat = template
	return l
}

// TimestampFormat sets the time layout used for {timestamp}.
func (l *Logger) TimestampFormat(layout string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tsFormat = layout
	return l
}

// UTC renders timestamps in UTC instead of local time.
func (l *Logger) UTC(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.utc = enabled
	return l
}

// Stderr routes terminal output to standard error instead of standard
// output. All levels share one stream either way.
func (l *Logger) Stderr(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.useStderr = enabled
	return l
}

// Style associates a terminal style with a level. Styles apply to the
// {level} token on the terminal sink only; file output is always plain
// text. A nil style renders the level unstyled.
func (l *Logger) Style(level Level, style *color.Color) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.styles[level] = style
	return l
}

// Output redirects the terminal sink's standard-output stream. Used by
// tests; defaults to color.Output.
func (l *Logger) Output(w io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
	return l
}

// ErrorOutput redirects the terminal sink's standard-error stream.
func (l *Logger) ErrorOutput(w io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
	return l
}

// Close releases the file handle if one is open. Safe to call multiple
// times.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == nil {
		return nil
	}
	err := l.handle.Close()
	l.handle = nil
	if err != nil {
		return &SinkError{Sink: "file", Op: "close", Err: err}
	}
	return nil
}

// --- Dispatch ---

// Log dispatches a record best-effort: sink failures are dropped and never
// reach the caller. A zero Time is filled with the current time.
func (l *Logger) Log(rec Record) {
	_ = l.output(rec, nil)
}

// RLog is the fallible counterpart of Log. It returns the first sink error
// encountered; the remaining sinks are still attempted.
func (l *Logger) RLog(rec Record) error {
	return l.output(rec, nil)
}

// emit builds a Record for a call site and dispatches it. calldepth counts
// stack frames from the user call site down to callerInfo, matching the
// convention of log.Output.
func (l *Logger) emit(level Level, calldepth int, msg string, keyvals []any) error {
	if (level == DebugLevel || level == DiagLevel) && !debugBuild {
		return nil
	}
	return l.output(Record{
		Level:      level,
		Message:    msg,
		Time:       time.Now(),
		ModulePath: callerInfo(calldepth),
	}, keyvals)
}

func (l *Logger) output(rec Record, keyvals []any) error {
	if (rec.Level == DebugLevel || rec.Level == DiagLevel) && !debugBuild {
		return nil
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, skip := l.ignored[rec.Level]; skip {
		return nil
	}
	if rec.Level != DiagLevel && rec.Level < l.minLevel {
		return nil
	}

	ts := rec.Time
	if l.utc {
		ts = ts.UTC()
	}
	base := strings.NewReplacer(
		"{timestamp}", ts.Format(l.tsFormat),
		"{module_path}", rec.ModulePath,
		"{message}", rec.Message,
	).Replace(l.format)
	base += encodeKV(l.kvFormat, keyvals)

	var firstErr error

	if l.terminal {
		if _, skip := l.termSkip[rec.Level]; !skip {
			line := strings.ReplaceAll(base, "{level}", l.styledLevel(rec.Level))
			w := l.stdout
			if l.useStderr {
				w = l.stderr
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				firstErr = &SinkError{Sink: "terminal", Op: "write", Err: err}
			}
		}
	}

	if l.file {
		if _, skip := l.fileSkip[rec.Level]; !skip {
			line := strings.ReplaceAll(base, "{level}", rec.Level.String())
			if err := l.writeFile(line); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// writeFile appends one rendered line to the log file, opening the handle
// on first use. Caller holds the mutex.
func (l *Logger) writeFile(line string) error {
	if l.path == "" {
		return ErrNoFilePath
	}
	if l.handle == nil {
		if err := l.openFile(); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(l.handle, line); err != nil {
		return &SinkError{Sink: "file", Op: "write", Err: err}
	}
	return nil
}

// openFile opens the configured path in append mode, creating parent
// directories as needed. Caller holds the mutex.
func (l *Logger) openFile() error {
	if dir := filepath.Dir(l.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SinkError{Sink: "file", Op: "open", Err: errors.Wrapf(err, "create log directory %s", dir)}
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &SinkError{Sink: "file", Op: "open", Err: err}
	}
	l.handle = f
	return nil
}

func (l *Logger) styledLevel(level Level) string {
	if c := l.styles[level]; c != nil {
		return c.Sprint(level.String())
	}
	return level.String()
}

// encodeKV renders key-value pairs through the per-pair template. Keys that
// are not strings are skipped, matching the forgiving placeholder policy.
func encodeKV(tmpl string, keyvals []any) string {
	if len(keyvals) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		b.WriteString(strings.NewReplacer(
			"{key}", key,
			"{value}", fmt.Sprint(keyvals[i+1]),
		).Replace(tmpl))
	}
	return b.String()
}

// callerInfo returns "package.Function:line" for the frame calldepth levels
// above the user call site convention described on emit.
func callerInfo(calldepth int) string {
	pc, _, line, ok := runtime.Caller(calldepth)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return fmt.Sprintf("%s:%d", full, line)
}
