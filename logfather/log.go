package logfather

import "fmt"

// Call sites come in three shapes per level, following the usual Go logging
// conventions: Xf (fmt.Sprintf style), Xln (fmt.Sprint style) and XKV
// (message plus key-value pairs). Every Xf has a fallible RXf mirror that
// returns the first sink error instead of swallowing it.
//
// Each shape exists both as a Logger method and as a package-level function
// against the shared Default logger.

// --- Logger methods, formatted ---

// Tracef logs a trace message formatted with fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...any) {
	_ = l.emit(TraceLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Debugf logs a debug message. A no-op in release builds.
func (l *Logger) Debugf(format string, v ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DebugLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	_ = l.emit(InfoLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	_ = l.emit(WarnLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	_ = l.emit(ErrorLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Critf logs a critical message formatted with fmt.Sprintf.
func (l *Logger) Critf(format string, v ...any) {
	_ = l.emit(CriticalLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Diagf logs a diagnostic message. Diagnostic records bypass the minimum
// level gate. A no-op in release builds.
func (l *Logger) Diagf(format string, v ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DiagLevel, 3, fmt.Sprintf(format, v...), nil)
}

// --- Logger methods, fallible ---

// RTracef is the fallible counterpart of Tracef.
func (l *Logger) RTracef(format string, v ...any) error {
	return l.emit(TraceLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RDebugf is the fallible counterpart of Debugf. Always nil in release
// builds.
func (l *Logger) RDebugf(format string, v ...any) error {
	if !debugBuild {
		return nil
	}
	return l.emit(DebugLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RInfof is the fallible counterpart of Infof.
func (l *Logger) RInfof(format string, v ...any) error {
	return l.emit(InfoLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RWarnf is the fallible counterpart of Warnf.
func (l *Logger) RWarnf(format string, v ...any) error {
	return l.emit(WarnLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RErrorf is the fallible counterpart of Errorf.
func (l *Logger) RErrorf(format string, v ...any) error {
	return l.emit(ErrorLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RCritf is the fallible counterpart of Critf.
func (l *Logger) RCritf(format string, v ...any) error {
	return l.emit(CriticalLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RDiagf is the fallible counterpart of Diagf. Always nil in release
// builds.
func (l *Logger) RDiagf(format string, v ...any) error {
	if !debugBuild {
		return nil
	}
	return l.emit(DiagLevel, 3, fmt.Sprintf(format, v...), nil)
}

// --- Logger methods, plain ---

// Traceln logs a trace message by joining arguments with fmt.Sprint.
func (l *Logger) Traceln(v ...any) {
	_ = l.emit(TraceLevel, 3, fmt.Sprint(v...), nil)
}

// Debugln logs a debug message by joining arguments with fmt.Sprint.
func (l *Logger) Debugln(v ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DebugLevel, 3, fmt.Sprint(v...), nil)
}

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func (l *Logger) Infoln(v ...any) {
	_ = l.emit(InfoLevel, 3, fmt.Sprint(v...), nil)
}

// Warnln logs a warning message by joining arguments with fmt.Sprint.
func (l *Logger) Warnln(v ...any) {
	_ = l.emit(WarnLevel, 3, fmt.Sprint(v...), nil)
}

// Errorln logs an error message by joining arguments with fmt.Sprint.
func (l *Logger) Errorln(v ...any) {
	_ = l.emit(ErrorLevel, 3, fmt.Sprint(v...), nil)
}

// Critln logs a critical message by joining arguments with fmt.Sprint.
func (l *Logger) Critln(v ...any) {
	_ = l.emit(CriticalLevel, 3, fmt.Sprint(v...), nil)
}

// Diagln logs a diagnostic message by joining arguments with fmt.Sprint.
func (l *Logger) Diagln(v ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DiagLevel, 3, fmt.Sprint(v...), nil)
}

// --- Logger methods, structured ---

// TraceKV logs a trace message with key-value pairs.
func (l *Logger) TraceKV(msg string, keyvals ...any) {
	_ = l.emit(TraceLevel, 3, msg, keyvals)
}

// DebugKV logs a debug message with key-value pairs.
func (l *Logger) DebugKV(msg string, keyvals ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DebugLevel, 3, msg, keyvals)
}

// InfoKV logs an informational message with key-value pairs.
func (l *Logger) InfoKV(msg string, keyvals ...any) {
	_ = l.emit(InfoLevel, 3, msg, keyvals)
}

// WarnKV logs a warning message with key-value pairs.
func (l *Logger) WarnKV(msg string, keyvals ...any) {
	_ = l.emit(WarnLevel, 3, msg, keyvals)
}

// ErrorKV logs an error message with key-value pairs.
func (l *Logger) ErrorKV(msg string, keyvals ...any) {
	_ = l.emit(ErrorLevel, 3, msg, keyvals)
}

// CritKV logs a critical message with key-value pairs.
func (l *Logger) CritKV(msg string, keyvals ...any) {
	_ = l.emit(CriticalLevel, 3, msg, keyvals)
}

// DiagKV logs a diagnostic message with key-value pairs.
func (l *Logger) DiagKV(msg string, keyvals ...any) {
	if !debugBuild {
		return
	}
	_ = l.emit(DiagLevel, 3, msg, keyvals)
}

// --- Package-level call sites against the Default logger ---

// Tracef logs a trace message on the shared logger.
func Tracef(format string, v ...any) {
	_ = Default().emit(TraceLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Debugf logs a debug message on the shared logger. A no-op in release
// builds.
func Debugf(format string, v ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DebugLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Infof logs an informational message on the shared logger.
func Infof(format string, v ...any) {
	_ = Default().emit(InfoLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Warnf logs a warning message on the shared logger.
func Warnf(format string, v ...any) {
	_ = Default().emit(WarnLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Errorf logs an error message on the shared logger.
func Errorf(format string, v ...any) {
	_ = Default().emit(ErrorLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Critf logs a critical message on the shared logger.
func Critf(format string, v ...any) {
	_ = Default().emit(CriticalLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Diagf logs a diagnostic message on the shared logger. A no-op in release
// builds.
func Diagf(format string, v ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DiagLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RTracef is the fallible counterpart of Tracef.
func RTracef(format string, v ...any) error {
	return Default().emit(TraceLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RDebugf is the fallible counterpart of Debugf.
func RDebugf(format string, v ...any) error {
	if !debugBuild {
		return nil
	}
	return Default().emit(DebugLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RInfof is the fallible counterpart of Infof.
func RInfof(format string, v ...any) error {
	return Default().emit(InfoLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RWarnf is the fallible counterpart of Warnf.
func RWarnf(format string, v ...any) error {
	return Default().emit(WarnLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RErrorf is the fallible counterpart of Errorf.
func RErrorf(format string, v ...any) error {
	return Default().emit(ErrorLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RCritf is the fallible counterpart of Critf.
func RCritf(format string, v ...any) error {
	return Default().emit(CriticalLevel, 3, fmt.Sprintf(format, v...), nil)
}

// RDiagf is the fallible counterpart of Diagf.
func RDiagf(format string, v ...any) error {
	if !debugBuild {
		return nil
	}
	return Default().emit(DiagLevel, 3, fmt.Sprintf(format, v...), nil)
}

// Traceln logs a trace message on the shared logger.
func Traceln(v ...any) {
	_ = Default().emit(TraceLevel, 3, fmt.Sprint(v...), nil)
}

// Debugln logs a debug message on the shared logger.
func Debugln(v ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DebugLevel, 3, fmt.Sprint(v...), nil)
}

// Infoln logs an informational message on the shared logger.
func Infoln(v ...any) {
	_ = Default().emit(InfoLevel, 3, fmt.Sprint(v...), nil)
}

// Warnln logs a warning message on the shared logger.
func Warnln(v ...any) {
	_ = Default().emit(WarnLevel, 3, fmt.Sprint(v...), nil)
}

// Errorln logs an error message on the shared logger.
func Errorln(v ...any) {
	_ = Default().emit(ErrorLevel, 3, fmt.Sprint(v...), nil)
}

// Critln logs a critical message on the shared logger.
func Critln(v ...any) {
	_ = Default().emit(CriticalLevel, 3, fmt.Sprint(v...), nil)
}

// Diagln logs a diagnostic message on the shared logger.
func Diagln(v ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DiagLevel, 3, fmt.Sprint(v...), nil)
}

// TraceKV logs a trace message with key-value pairs on the shared logger.
func TraceKV(msg string, keyvals ...any) {
	_ = Default().emit(TraceLevel, 3, msg, keyvals)
}

// DebugKV logs a debug message with key-value pairs on the shared logger.
func DebugKV(msg string, keyvals ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DebugLevel, 3, msg, keyvals)
}

// InfoKV logs an informational message with key-value pairs on the shared
// logger.
func InfoKV(msg string, keyvals ...any) {
	_ = Default().emit(InfoLevel, 3, msg, keyvals)
}

// WarnKV logs a warning message with key-value pairs on the shared logger.
func WarnKV(msg string, keyvals ...any) {
	_ = Default().emit(WarnLevel, 3, msg, keyvals)
}

// ErrorKV logs an error message with key-value pairs on the shared logger.
func ErrorKV(msg string, keyvals ...any) {
	_ = Default().emit(ErrorLevel, 3, msg, keyvals)
}

// CritKV logs a critical message with key-value pairs on the shared logger.
func CritKV(msg string, keyvals ...any) {
	_ = Default().emit(CriticalLevel, 3, msg, keyvals)
}

// DiagKV logs a diagnostic message with key-value pairs on the shared
// logger.
func DiagKV(msg string, keyvals ...any) {
	if !debugBuild {
		return
	}
	_ = Default().emit(DiagLevel, 3, msg, keyvals)
}
