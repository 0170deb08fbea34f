package logfather

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOGFATHER_LEVEL", "")
	t.Setenv("LOGFATHER_IGNORE", "")
	t.Setenv("LOGFATHER_FILE", "")

	l, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, l.terminal)
	assert.False(t, l.file)
	assert.Equal(t, TraceLevel, l.minLevel)
	assert.Empty(t, l.ignored)
}

func TestFromEnv_LevelAndIgnore(t *testing.T) {
	forceColor(t, false)
	t.Setenv("LOGFATHER_LEVEL", "error")
	t.Setenv("LOGFATHER_IGNORE", "warning,critical")

	l, err := FromEnv()
	require.NoError(t, err)

	var out bytes.Buffer
	l.Output(&out).Format("{message}")

	l.Infof("below minimum")
	l.Warnf("ignored")
	l.Critf("also ignored")
	l.Errorf("kept")

	assert.Equal(t, "kept", strings.TrimSpace(out.String()))
}

func TestFromEnv_FileAndFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("LOGFATHER_FILE", path)
	t.Setenv("LOGFATHER_FORMAT", "{level}>{message}")
	t.Setenv("LOGFATHER_TERMINAL", "false")

	l, err := FromEnv()
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	assert.False(t, l.terminal)
	l.Infof("to file")

	assert.Equal(t, "INFO>to file", readLines(t, path)[0])
}

func TestFromEnv_InvalidLevel(t *testing.T) {
	t.Setenv("LOGFATHER_LEVEL", "verbose")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGFATHER_LEVEL")
}

func TestFromEnv_InvalidIgnore(t *testing.T) {
	t.Setenv("LOGFATHER_LEVEL", "")
	t.Setenv("LOGFATHER_IGNORE", "warning,bogus")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGFATHER_IGNORE")
}
