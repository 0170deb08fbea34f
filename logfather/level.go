package logfather

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the severity of a log record. Severities are ordered and the
// ordering drives the minimum-level gate: a record passes only when its
// level is at or above the configured minimum.
//
// DiagLevel sits outside the ordering. Diagnostic records are gated by the
// build mode (and the ignore set), never by the minimum level.
type Level int

const (
	// TraceLevel enables very fine-grained tracing.
	TraceLevel Level = iota
	// DebugLevel enables debug logging. Compiled out of release builds.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// CriticalLevel enables critical logging.
	CriticalLevel
	// DiagLevel tags diagnostic records. Compiled out of release builds and
	// exempt from the minimum-level gate.
	DiagLevel
)

// AllLevels returns every supported level in severity order, with DiagLevel
// last.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		CriticalLevel,
		DiagLevel,
	}
}

// String returns the canonical upper-case level name.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case DiagLevel:
		return "DIAG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive and accepts the common aliases WARN/WARNING,
// CRIT/CRITICAL and DIAG/DIAGNOSTIC.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRIT", "CRITICAL":
		return CriticalLevel, nil
	case "DIAG", "DIAGNOSTIC":
		return DiagLevel, nil
	}
	return InfoLevel, errors.Errorf("unknown log level %q", name)
}
