package logfather

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoFilePath is returned by the fallible call sites when the file sink is
// enabled but no path has been configured.
var ErrNoFilePath = errors.New("file output enabled but no path configured")

// SinkError describes a failure in one output sink. It wraps the underlying
// cause so callers can unwrap with errors.Is / errors.As.
type SinkError struct {
	// Sink is the sink that failed, "terminal" or "file".
	Sink string
	// Op is the operation that failed, "open" or "write".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("logfather: %s %s: %v", e.Sink, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
