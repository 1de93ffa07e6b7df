package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/llskyhi/log-call/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text formatter is the default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(logging.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithJSONFormatter(),
		)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level gates records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		log.Warn("kept")
		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})

	t.Run("level var adjusts after construction", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		lv := new(slog.LevelVar)
		lv.Set(slog.LevelWarn)
		log := logging.New(logging.WithOutput(buf), logging.WithLevelVar(lv))
		log.Info("dropped")
		lv.Set(slog.LevelDebug)
		log.Info("kept")
		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithJSONFormatter(),
			logging.WithAttr(slog.String("component", "test")),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithJSONFormatter(),
			logging.WithContextValue("id", ctxKey),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "42", entry["id"])
	})

	t.Run("nil extractors are filtered", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithContextExtractors(nil),
		)
		assert.NotPanics(t, func() { log.Info("ok") })
	})

	t.Run("replace attr hook", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logging.New(
			logging.WithOutput(buf),
			logging.WithJSONFormatter(),
			logging.WithReplaceAttr(func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "password" {
					a.Value = slog.StringValue("[redacted]")
				}
				return a
			}),
		)
		log.Info("msg", slog.String("password", "hunter2"))
		assert.NotContains(t, buf.String(), "hunter2")
		assert.Contains(t, buf.String(), "[redacted]")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logging.New(logging.WithFormat(logging.Format("xml")))
		})
	})
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.Attr{}, logging.Error(nil))
	assert.Equal(t, "error", logging.Error(assert.AnError).Key)
	assert.Equal(t, slog.Attr{}, logging.Component(""))
	assert.Equal(t, "component", logging.Component("core").Key)
	assert.Equal(t, slog.Attr{}, logging.Caller(""))
	assert.Equal(t, "serial", logging.Serial(7).Key)
	assert.Equal(t, "goroutine", logging.Goroutine(7).Key)
	assert.Equal(t, "elapsed", logging.Elapsed(0).Key)
}
