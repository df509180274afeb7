package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"counterlab/internal/config"
	"counterlab/internal/counter"
)

func TestNew_NoFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counterlab.log")
	logger, err := New(config.LoggingConfig{Level: "warn", File: path}, false)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", zap.Int("count", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"count":3`)
	assert.NotContains(t, string(data), "dropped")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counterlab.log")
	logger, err := New(config.LoggingConfig{Level: "error", File: path}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}, false)
	assert.Error(t, err)
}

func TestCounterHook(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := counter.New(counter.WithHook(CounterHook(zap.New(core), "object")))

	c.Increment()
	c.SetStep("3")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "count changed from 0 to 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "object", entries[0].ContextMap()["counter"])
	assert.Equal(t, "increment", entries[0].ContextMap()["intent"])

	assert.Equal(t, "intent applied", entries[1].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.EqualValues(t, 3, entries[1].ContextMap()["step"])
}

func TestCounterHook_NilLogger(t *testing.T) {
	hook := CounterHook(nil, "hook")
	assert.NotPanics(t, func() { hook(counter.Change{From: 1, To: 2}) })
}
