package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)
		logger.Info().Str("k", "v").Msg("hello")
		logger.Debug().Msg("hidden")

		assert.Contains(t, buf.String(), `"k":"v"`)
		assert.Contains(t, buf.String(), `"message":"hello"`)
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: "debug", Format: FormatConsole}, &buf)
		logger.Debug().Msg("visible")

		assert.Contains(t, buf.String(), "visible")
		assert.NotContains(t, buf.String(), `"message"`)
	})
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		res := NewLoggerWithPath(Config{Output: OutputDiscard})
		assert.False(t, res.UsingFile)
		assert.Equal(t, zerolog.Disabled, res.Logger.GetLevel())
		assert.NoError(t, res.Close())
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "coalprint.log")
		res := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
		require.True(t, res.UsingFile)
		assert.Equal(t, path, res.FilePath)

		res.Logger.Info().Msg("to file")
		require.NoError(t, res.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("file output without path falls back", func(t *testing.T) {
		res := NewLoggerWithPath(Config{Output: OutputFile})
		assert.False(t, res.UsingFile)
		assert.True(t, res.FallbackUsed)
		assert.NotEmpty(t, res.FallbackReason)
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	assert.Len(t, id, 26)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, NewTraceID())
}

func TestFromContext(t *testing.T) {
	t.Run("carries the trace ID once", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
		ctx = WithLogger(ctx, zerolog.New(&buf))

		logger := FromContext(ctx)
		logger.Info().Msg("traced")

		assert.Equal(t, 1, strings.Count(buf.String(), `"trace_id":"01TESTTRACE"`))
	})

	t.Run("without a logger", func(t *testing.T) {
		assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(zerolog.New(&buf), "tui")
	logger.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"tui"`)
}
