// Package config loads counterlab settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all counterlab configuration.
type Config struct {
	Title   TitleConfig   `yaml:"title"`
	Logging LoggingConfig `yaml:"logging"`
	Trace   TraceConfig   `yaml:"trace"`
}

// TitleConfig controls the window-title side channel.
type TitleConfig struct {
	Default  string `yaml:"default"`  // shown when no counter holds the title
	Terminal bool   `yaml:"terminal"` // OSC window title
	Tmux     bool   `yaml:"tmux"`     // rename the tmux window when $TMUX is set
}

// LoggingConfig configures logging. An empty File disables logging; the TUI
// owns stdout.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// TraceConfig configures OTLP trace export. An empty Endpoint disables it.
type TraceConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title: TitleConfig{
			Default:  "counterlab",
			Terminal: true,
			Tmux:     true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Trace: TraceConfig{
			ServiceName: "counterlab",
			Insecure:    true,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path or a missing file yields the defaults
// plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COUNTERLAB_DEFAULT_TITLE"); v != "" {
		c.Title.Default = v
	}
	if v := os.Getenv("COUNTERLAB_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("COUNTERLAB_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	// Same variables the OTLP exporters read.
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Trace.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Trace.ServiceName = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title.Default) == "" {
		return errors.New("title.default must not be empty")
	}
	valid := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %q (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Trace.Endpoint != "" && c.Trace.ServiceName == "" {
		return errors.New("trace.service_name is required when trace.endpoint is set")
	}
	return nil
}
