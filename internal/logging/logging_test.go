package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNewWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "json", "info")
		assert.Same(t, logger, slog.Default())

		logger.Debug("hidden")
		logger.Info("shown", "section", "faq")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "faq", entry["section"])
	})

	t.Run("text output carries the source", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "", "").Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
		assert.Contains(t, buf.String(), "source=")
	})
}
