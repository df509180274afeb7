package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"COUNTERLAB_DEFAULT_TITLE", "COUNTERLAB_LOG_FILE", "COUNTERLAB_LOG_LEVEL",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "counterlab", cfg.Title.Default)
	assert.True(t, cfg.Title.Terminal)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Empty(t, cfg.Trace.Endpoint)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "counterlab.yaml")
	data := `
title:
  default: My Demo
  tmux: false
logging:
  level: debug
  file: /tmp/counterlab.log
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Demo", cfg.Title.Default)
	assert.False(t, cfg.Title.Tmux)
	assert.True(t, cfg.Title.Terminal, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/counterlab.log", cfg.Logging.File)
	assert.Equal(t, "counterlab", cfg.Trace.ServiceName)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "counterlab.yaml")
	data := `
title:
  default: ""
logging:
  level: loud
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "title.default")
}

func TestLoad_RejectsInvalidEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("COUNTERLAB_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COUNTERLAB_DEFAULT_TITLE", "Tab")
	t.Setenv("COUNTERLAB_LOG_FILE", "out.log")
	t.Setenv("COUNTERLAB_LOG_LEVEL", "WARN")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "demo")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Tab", cfg.Title.Default)
	assert.Equal(t, "out.log", cfg.Logging.File)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "demo", cfg.Trace.ServiceName)
}

func TestValidate(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		cfg := Default()
		cfg.Title.Default = "  "
		assert.Error(t, cfg.Validate())
	})
	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "trace"
		assert.ErrorContains(t, cfg.Validate(), "invalid log level")
	})
	t.Run("endpoint without service name", func(t *testing.T) {
		cfg := Default()
		cfg.Trace.Endpoint = "localhost:4318"
		cfg.Trace.ServiceName = ""
		assert.Error(t, cfg.Validate())
	})
}
