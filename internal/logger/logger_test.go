package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithStage("sanitize").Info("document corrected")

	entry := decodeEntry(t, buf.Bytes())
	require.Equal(t, "document corrected", entry["message"])
	require.Equal(t, "sanitize", entry["stage"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithStage("validate").Error(errors.New("3 violations"), "document rejected")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := decodeEntry(t, []byte(lines[0]))
	require.Equal(t, "document rejected", entry["message"])
	require.Equal(t, "validate", entry["stage"])
	require.Equal(t, "3 violations", entry["error"])
	require.Equal(t, "error", entry["level"])
}

func TestLoggerPrettyOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Pretty: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hello")

	// Console format is not JSON.
	out := buf.String()
	require.Contains(t, out, "hello")
	require.Error(t, json.Unmarshal([]byte(out), &map[string]any{}))
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "chatty")
}

func TestNopLoggerIsSafe(t *testing.T) {
	t.Parallel()

	log := Nop()
	log.WithStage("build").Info("dropped")
	log.Error(errors.New("x"), "dropped")

	var nilLogger *Logger
	nilLogger.Info("no panic")
	nilLogger.Warn("no panic")
	require.Nil(t, nilLogger.WithFields(map[string]any{"k": "v"}))
}
