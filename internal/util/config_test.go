package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
)

func TestDefaultMatchesEngine(t *testing.T) {
	cfg := Default()
	assert.Equal(t, engine.DefaultConfiguration(), cfg.Initial())
	assert.Equal(t, time.Second, cfg.TransitionWindow())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyspace.yaml")
	body := "environment: forest\ntime_of_day: night\nweather: rain\nambient_noise: 55\ntheme: dracula\nbackground:\n  width: 800\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, 800, cfg.Background.Width)
	assert.Equal(t, engine.DefaultBackgroundHeight, cfg.Background.Height, "unset key keeps default")
	assert.True(t, cfg.ShowTips, "unset key keeps default")

	start := cfg.Initial()
	assert.Equal(t, engine.EnvForest, start.Environment)
	assert.Equal(t, engine.TimeNight, start.TimeOfDay)
	assert.Equal(t, engine.WeatherRain, start.WeatherEffect)
	assert.Equal(t, 55, start.AmbientNoiseLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("environment: [unterminated"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvEnvironment: "Café",
		EnvWeather:     "wind",
		EnvNoise:       "250",
		EnvTheme:       "gruvbox",
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	start := cfg.Initial()
	assert.Equal(t, engine.EnvCafe, start.Environment)
	assert.Equal(t, engine.WeatherWind, start.WeatherEffect)
	assert.Equal(t, 100, start.AmbientNoiseLevel)
	assert.Equal(t, "gruvbox", cfg.Theme)

	env[EnvNoise] = "loud"
	assert.Error(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
}

func TestInitialRejectsUnknownValues(t *testing.T) {
	cfg := Default()
	cfg.Environment = "library"
	cfg.Weather = "rain"
	cfg.TimeOfDay = "twilight"
	cfg.TransitionMS = -3
	start := cfg.Initial()
	assert.Equal(t, engine.WeatherClear, start.WeatherEffect)
	assert.Equal(t, engine.TimeDay, start.TimeOfDay)
	assert.Equal(t, engine.TransitionWindow, cfg.TransitionWindow())
}
