package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"STUDYSPACE_CONFIG", "STUDYSPACE_ENVIRONMENT", "STUDYSPACE_TIME", "STUDYSPACE_WEATHER", "STUDYSPACE_NOISE", "STUDYSPACE_THEME"} {
		t.Setenv(k, "")
	}
}

func TestDescribeDefaults(t *testing.T) {
	clearEnv(t)
	out, err := runCLI(t, "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "descriptor:  library-day")
	assert.Contains(t, out, "/api/placeholder/1200/600?text=library-day")
	assert.Contains(t, out, "tip:         Libraries promote focus")
}

func TestDescribeFlagsJSON(t *testing.T) {
	clearEnv(t)
	out, err := runCLI(t, "describe", "--environment", "beach", "--time", "night", "--weather", "wind", "--noise", "150", "--json")
	require.NoError(t, err)

	var got description
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "beach-night-wind", got.Descriptor)
	assert.Equal(t, 100, got.Configuration.AmbientNoiseLevel)
	assert.True(t, got.Sections.WindIndicator)
	assert.Equal(t, engine.IndicatorMoon, got.Sections.TimeIndicator)
}

func TestDescribeConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "studyspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: forest\nweather: rain\nshow_tips: false\n"), 0o600))
	t.Setenv("STUDYSPACE_TIME", "night")

	out, err := runCLI(t, "describe", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "descriptor:  forest-night-rain")
	assert.NotContains(t, out, "tip:")
}

func TestDescribeRejectsUnknownFlagValue(t *testing.T) {
	clearEnv(t)
	_, err := runCLI(t, "describe", "--environment", "moon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown environment")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "studyspace "))
}

func TestBuildLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")
	logger, err := buildLogger(path, true)
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
