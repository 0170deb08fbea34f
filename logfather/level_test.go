package logfather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	assert.True(t, TraceLevel < DebugLevel)
	assert.True(t, DebugLevel < InfoLevel)
	assert.True(t, InfoLevel < WarnLevel)
	assert.True(t, WarnLevel < ErrorLevel)
	assert.True(t, ErrorLevel < CriticalLevel)
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		TraceLevel:    "TRACE",
		DebugLevel:    "DEBUG",
		InfoLevel:     "INFO",
		WarnLevel:     "WARNING",
		ErrorLevel:    "ERROR",
		CriticalLevel: "CRITICAL",
		DiagLevel:     "DIAG",
		Level(42):     "UNKNOWN",
	}
	for level, want := range cases {
		assert.Equal(t, want, level.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":      TraceLevel,
		"DEBUG":      DebugLevel,
		" info ":     InfoLevel,
		"warn":       WarnLevel,
		"Warning":    WarnLevel,
		"error":      ErrorLevel,
		"crit":       CriticalLevel,
		"CRITICAL":   CriticalLevel,
		"diag":       DiagLevel,
		"diagnostic": DiagLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoErrorf(t, err, "ParseLevel(%q)", name)
		assert.Equalf(t, want, got, "ParseLevel(%q)", name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()
	require.Len(t, levels, 7)
	assert.Equal(t, TraceLevel, levels[0])
	assert.Equal(t, DiagLevel, levels[len(levels)-1])
}
