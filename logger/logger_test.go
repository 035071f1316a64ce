package logger_test

import (
	"bytes"
	"context"
	"io"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/reugn/go-daterule/internal/assert"
	"github.com/reugn/go-daterule/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimpleLogger(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", log.LstdFlags), logger.LevelInfo)

	l.Trace("Trace")
	assertEmpty(t, &b)

	l.Debug("Debug")
	assertEmpty(t, &b)

	l.Info("Info")
	assertNotEmpty(t, &b)

	l.Warn("Warn")
	assertNotEmpty(t, &b)

	l.Error("Error")
	assertNotEmpty(t, &b)
}

func TestSimpleLoggerOff(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", log.LstdFlags), logger.LevelOff)

	assert.False(t, l.Enabled(logger.LevelError))
	l.Error("Error")
	assertEmpty(t, &b)
}

func TestSimpleLoggerFormat(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelTrace)

	l.Warn("invalid token", "field", "day", "token", "foo")
	assert.Equal(t, readAll(t, &b), "WARN msg=invalid token, field=day, token=foo\n")

	l.Trace("odd", "key")
	assert.Equal(t, readAll(t, &b), "TRACE msg=odd, key\n")
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	handler := slog.NewTextHandler(&b, &slog.HandlerOptions{
		Level: slog.Level(logger.LevelTrace),
	})
	l := logger.NewSlogLogger(context.Background(), slog.New(handler))

	l.Trace("resolved", "n", 3)
	msg := readAll(t, &b)
	assert.True(t, strings.Contains(msg, "msg=resolved"))
	assert.True(t, strings.Contains(msg, "n=3"))

	l.Error("failed")
	assertNotEmpty(t, &b)
}

func TestSlogLoggerNil(t *testing.T) {
	t.Parallel()
	defer func() {
		assert.NotEqual(t, recover(), nil)
	}()
	_ = logger.NewSlogLogger(context.Background(), nil)
}

func TestZapLogger(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)

	l := logger.NewZapLogger(zap.New(core), logger.LevelDebug)
	l.Trace("dropped")
	l.Debug("debug", "k", 1)
	l.Warn("warn", "token", "foo")
	assert.Equal(t, logs.Len(), 2)

	entries := logs.FilterMessage("warn").All()
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].ContextMap()["token"], any("foo"))

	tracing := logger.NewZapLogger(zap.New(core), logger.LevelTrace)
	tracing.Trace("kept")
	assert.Equal(t, logs.FilterMessage("kept").Len(), 1)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		expected logger.Level
	}{
		{"trace", logger.LevelTrace},
		{"DEBUG", logger.LevelDebug},
		{" info ", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"error", logger.LevelError},
		{"off", logger.LevelOff},
	}
	for _, tt := range tests {
		level, err := logger.ParseLevel(tt.name)
		assert.IsNil(t, err)
		assert.Equal(t, level, tt.expected)
	}

	_, err := logger.ParseLevel("verbose")
	assert.NotEqual(t, err, nil)
	assert.Equal(t, logger.LevelWarn.String(), "warn")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()
	var l logger.Logger = logger.NoOpLogger{}
	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
}

func assertEmpty(t *testing.T, r io.Reader) {
	t.Helper()
	if msg := readAll(t, r); msg != "" {
		t.Fatalf("log msg is not empty: %s", msg)
	}
}

func assertNotEmpty(t *testing.T, r io.Reader) {
	t.Helper()
	if readAll(t, r) == "" {
		t.Fatal("log msg is empty")
	}
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
