// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Configuration for buffer-backed programs, loaded from YAML.

package control

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds parameters for one run.
type Config struct {
	Capacity  int    `yaml:"capacity"`   // Capacity of demo buffers
	Trace     bool   `yaml:"trace"`      // Whether buffer events are logged
	LogLevel  string `yaml:"log_level"`  // zap level name
	LogFormat string `yaml:"log_format"` // "console" or "json"
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:  5,
		Trace:     false,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return errors.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// Snapshot returns the configuration as a flat map.
func (c *Config) Snapshot() map[string]any {
	return map[string]any{
		"capacity":   c.Capacity,
		"trace":      c.Trace,
		"log_level":  c.LogLevel,
		"log_format": c.LogFormat,
	}
}
