package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZerolog(buf *bytes.Buffer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(buf).Level(level)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestDispatcherLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	dl := NewDispatcherLogger(newZerolog(&buf, zerolog.DebugLevel))

	dl.Debug("handling event", "command", "click", "location", "tokyo")

	entry := decode(t, &buf)
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "handling event", entry["message"])
	assert.Equal(t, "click", entry["command"])
	assert.Equal(t, "tokyo", entry["location"])
}

func TestDispatcherLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	dl := NewDispatcherLogger(newZerolog(&buf, zerolog.InfoLevel))

	dl.Info("registered", "commands", 7)

	entry := decode(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["commands"])
}

func TestDispatcherLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	dl := NewDispatcherLogger(newZerolog(&buf, zerolog.ErrorLevel))

	dl.Error("event failed", "reason", "unknown command")

	entry := decode(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "unknown command", entry["reason"])
}

func TestDispatcherLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	dl := NewDispatcherLogger(newZerolog(&buf, zerolog.InfoLevel))

	dl.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestToFields_SkipsBadPairs(t *testing.T) {
	fields := toFields([]any{"ok", 1, 42, "non-string key", "dangling"})

	assert.Equal(t, map[string]any{"ok": 1}, fields)
}
