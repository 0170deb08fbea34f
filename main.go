package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/mordilloSan/go-logfather/logfather"
)

// Example demonstrating go-logfather usage.
// Usage: ./go-logfather [logfile]
func main() {
	if len(os.Args) > 1 {
		l := logfather.New().File(true).Path(os.Args[1])
		defer l.Close() // Don't forget to release the log file!
		logfather.SetDefault(l)
		logfather.Infof("logging to terminal and %s", os.Args[1])
	} else {
		logfather.Infof("logging to terminal only (pass a file path to enable the file sink)")
	}

	// One call site per level; DEBUG and DIAG disappear in release builds.
	logfather.Tracef("fine-grained tracing")
	logfather.Debugf("debug is on")
	logfather.Infof("hello %s", "world")
	logfather.Warnln("be careful")
	logfather.Errorf("oops: %v", "something happened")
	logfather.Critf("this needs attention")
	logfather.Diagf("diagnostics bypass the minimum level")

	// Structured key-value pairs.
	logfather.InfoKV("request completed",
		"duration_ms", 42,
		"status", 200,
		"path", "/api/users")

	// Fallible call sites report sink failures instead of dropping them.
	if err := logfather.RErrorf("checked write"); err != nil {
		os.Exit(1)
	}

	// Reconfigure the shared logger: custom template, style and filters.
	logfather.Default().
		Format("{timestamp} {level} -- {message}").
		Style(logfather.InfoLevel, color.New(color.FgHiGreen)).
		Ignore(logfather.WarnLevel)

	logfather.Warnf("suppressed by the ignore set")
	logfather.Infof("restyled and reformatted")
}
