package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"log/slog"

	"github.com/llskyhi/log-call/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The registry is process-wide state, so these tests reset it and do not run
// in parallel.

func TestRegistryGet(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	first := logging.Get("app.one")
	second := logging.Get("app.one")
	assert.Same(t, first, second, "a name maps to one logger for the process lifetime")
	assert.NotSame(t, first, logging.Get("app.two"))
}

func TestRegistryTagsRecordsWithLoggerName(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)
	buf := &bytes.Buffer{}
	logging.Configure(logging.WithJSONFormatter(), logging.WithOutput(buf), logging.WithAddSource(false))

	logging.Get("app.orders").Info("placed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "app.orders", entry["logger"])
	assert.Equal(t, "placed", entry["msg"])
}

func TestRegistrySetLevel(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)
	buf := &bytes.Buffer{}
	logging.Configure(logging.WithJSONFormatter(), logging.WithOutput(buf), logging.WithLevel(slog.LevelInfo))

	log := logging.Get("app.chatty")
	log.Debug("dropped")
	logging.SetLevel("app.chatty", slog.LevelDebug)
	log.Debug("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Equal(t, slog.LevelDebug, logging.LevelOf("app.chatty"))
}

func TestRegistryConfigure(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)
	buf := &bytes.Buffer{}

	// Loggers handed out before Configure must pick up the new handler.
	log := logging.Get("app.early")
	logging.Configure(logging.WithJSONFormatter(), logging.WithOutput(buf), logging.WithLevel(slog.LevelDebug))
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	t.Run("explicit levels survive reconfiguration", func(t *testing.T) {
		logging.SetLevel("app.pinned", slog.LevelError)
		logging.Configure(logging.WithJSONFormatter(), logging.WithOutput(buf), logging.WithLevel(slog.LevelDebug))
		assert.Equal(t, slog.LevelError, logging.LevelOf("app.pinned"))
		assert.Equal(t, slog.LevelDebug, logging.LevelOf("app.early"))
	})
}

func TestRegistryDerivedLoggers(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)
	buf := &bytes.Buffer{}
	logging.Configure(logging.WithJSONFormatter(), logging.WithOutput(buf), logging.WithAddSource(false))

	log := logging.Get("app.base").With(slog.String("request_id", "r-1"))
	log.Info("handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "app.base", entry["logger"])

	buf.Reset()
	grouped := logging.Get("app.base").WithGroup("req").With(slog.String("id", "r-2"))
	grouped.Info("grouped")
	line := buf.String()
	assert.Contains(t, line, "r-2")
	require.True(t, strings.Contains(line, "req"), "group must survive the registry indirection")
}
