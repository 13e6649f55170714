package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func resetLoggers(t *testing.T) {
	t.Helper()
	app, req, timer, errL := AppLogger, RequestLogger, TimerLogger, ErrorLogger
	t.Cleanup(func() {
		AppLogger, RequestLogger, TimerLogger, ErrorLogger = app, req, timer, errL
	})
}

func TestInitLogger_WritesFilesIntoDir(t *testing.T) {
	resetLoggers(t)
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, InitLogger(Options{Dir: dir, Level: "info"}))
	AppLogger.Info("hello from app")
	ErrorLogger.Error("boom")
	Sync()

	app, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(app), `"msg":"hello from app"`)
	assert.Contains(t, string(app), `"timestamp"`)

	errLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errLog), "boom")
}

func TestInitLogger_LevelFiltersDebug(t *testing.T) {
	resetLoggers(t)
	dir := t.TempDir()

	require.NoError(t, InitLogger(Options{Dir: dir, Level: "warn"}))
	RequestLogger.Info("quiet")
	RequestLogger.Warn("loud")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "request.log"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "quiet"))
	assert.Contains(t, string(data), "loud")
}

func TestInitLogger_BadLevel(t *testing.T) {
	resetLoggers(t)
	err := InitLogger(Options{Dir: t.TempDir(), Level: "chatty"})
	assert.Error(t, err)
}

func TestLogDuration_WritesTimerLine(t *testing.T) {
	resetLoggers(t)
	core, logs := observer.New(zapcore.InfoLevel)
	TimerLogger = zap.New(core)

	ctx := context.WithValue(context.Background(), TraceIDKey, "run-1")
	LogDuration(ctx, "signup")()

	entries := logs.FilterMessage("Function timed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "signup", fields["func"])
	assert.Equal(t, "run-1", fields["trace_id"])
	assert.Contains(t, fields, "duration_ms")
}
