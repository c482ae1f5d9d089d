package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NewNopLogger()
	l.Info("discarded", "key", "value")
	l.With("component", "test").Warn("discarded")
}

func TestLoggerWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsm.log")

	l := NewLoggerWithOptions(Options{Level: "debug", File: path, MaxSizeMB: 1})
	l.With("component", "receiver").Debug("message received", "tag", "0001000001")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := string(data)
	require.True(t, strings.Contains(line, `"msg":"message received"`), line)
	require.Contains(t, line, `"component":"receiver"`)
	require.Contains(t, line, `"tag":"0001000001"`)
	require.Contains(t, line, `"timestamp"`)
}

func TestLoggerLevelFiltersEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsm.log")

	l := NewLoggerWithOptions(Options{Level: "warn", File: path})
	l.Info("below level")
	l.Warn("at level")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "below level")
	require.Contains(t, string(data), "at level")
}
