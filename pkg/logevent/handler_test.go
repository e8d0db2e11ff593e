package logevent

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) [][]any {
	t.Helper()
	var lines [][]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line []any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestHandlerWritesJSONLines(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelInfo).WithGroup("codec").With("path", "a.der")

	logger.Info("decoded", "format", "der")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0][1])
	assert.Equal(t, "/codec/", lines[0][2])
	assert.Equal(t, "decoded", lines[0][3])
	assert.Equal(t, map[string]any{"path": "a.der", "format": "der"}, lines[0][4])
}

func TestHandlerCountsFilteredEvents(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelWarn).WithGroup("batch")

	counter := eventCounter.WithLabelValues("DEBUG", "/batch/", "decoded")
	before := testutil.ToFloat64(counter)

	logger.Debug("file decoded", EventAttrKey, "decoded")
	logger.Debug("file decoded", EventAttrKey, "decoded")
	logger.Info("not an event")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Empty(t, buf.String())

	logger.Warn("decode failed", EventAttrKey, "decode_failed")
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "/batch/decode_failed", lines[0][2])
}

func TestLoggerContext(t *testing.T) {
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))

	logger := New(&bytes.Buffer{}, slog.LevelDebug)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}

func TestParseLevel(t *testing.T) {
	for text, want := range map[string]slog.Level{
		"":       slog.LevelInfo,
		"debug":  slog.LevelDebug,
		"WARN":   slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	} {
		got, err := ParseLevel(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
