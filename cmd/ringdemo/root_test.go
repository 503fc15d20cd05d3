// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBasicsCommand(t *testing.T) {
	out, err := run(t, "basics")
	require.NoError(t, err)
	assert.Contains(t, out, "c1: Amuro Ray Char Aznable Noa Bright\n")
	assert.Contains(t, out, "c5: 4294967293 4294967294 123 1\n")
}

func TestEvaluateCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 3\n"), 0o644))

	out, err := run(t, "evaluate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "int buffer, PositiveInt:\n[0]: false\n[1]: true\n[2]: false\n")
}

func TestCapacityFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 3\n"), 0o644))

	_, err := run(t, "basics", "--config", path, "--capacity", "2")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "--capacity", "4")
	require.NoError(t, err)

	var doc struct {
		Config map[string]any `yaml:"config"`
		Stats  map[string]any `yaml:"stats"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 4, doc.Config["capacity"])
	assert.Contains(t, doc.Stats, "ring.overwrite")
	window, ok := doc.Stats["debug.ring.window"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "6 7 8", window["contents"])
	assert.Equal(t, 3, window["size"])
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "basics", "--log-level", "loud")
	assert.Error(t, err)
}
