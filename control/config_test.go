// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ring.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, "capacity: 3\ntrace: true\nlog_level: debug\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Capacity: 3, Trace: true, LogLevel: "debug", LogFormat: "console"}, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":  "capacity: [",
		"negative":   "capacity: -2\n",
		"bad level":  "log_level: loud\n",
		"bad format": "log_format: xml\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_Snapshot(t *testing.T) {
	snap := DefaultConfig().Snapshot()
	assert.Equal(t, 5, snap["capacity"])
	assert.Equal(t, "info", snap["log_level"])
}
