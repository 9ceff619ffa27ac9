package util

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
)

// Config holds runtime settings and flags.
type Config struct {
	Environment  string     `yaml:"environment"`
	TimeOfDay    string     `yaml:"time_of_day"`
	Weather      string     `yaml:"weather"`
	AmbientNoise int        `yaml:"ambient_noise"`
	ShowTips     bool       `yaml:"show_tips"`
	Companions   bool       `yaml:"companions"`
	Theme        string     `yaml:"theme"`
	TransitionMS int        `yaml:"transition_ms"`
	Background   Background `yaml:"background"`

	LogFile string `yaml:"-"`
	Debug   bool   `yaml:"-"`
}

// Background configures the placeholder image URL.
type Background struct {
	BaseURL string `yaml:"base_url"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// Env var names read by ApplyEnv.
const (
	EnvConfigPath  = "STUDYSPACE_CONFIG"
	EnvEnvironment = "STUDYSPACE_ENVIRONMENT"
	EnvTimeOfDay   = "STUDYSPACE_TIME"
	EnvWeather     = "STUDYSPACE_WEATHER"
	EnvNoise       = "STUDYSPACE_NOISE"
	EnvTheme       = "STUDYSPACE_THEME"
)

func Default() Config {
	d := engine.DefaultConfiguration()
	return Config{
		Environment:  string(d.Environment),
		TimeOfDay:    string(d.TimeOfDay),
		Weather:      string(d.WeatherEffect),
		AmbientNoise: d.AmbientNoiseLevel,
		ShowTips:     d.ShowTips,
		Companions:   d.HasCompanions,
		Theme:        "catppuccin",
		TransitionMS: int(engine.TransitionWindow / time.Millisecond),
		Background: Background{
			BaseURL: engine.DefaultBackgroundBase,
			Width:   engine.DefaultBackgroundWidth,
			Height:  engine.DefaultBackgroundHeight,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// ApplyEnv overlays STUDYSPACE_* variables. A malformed noise value is an error.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvEnvironment)); v != "" {
		c.Environment = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeOfDay)); v != "" {
		c.TimeOfDay = v
	}
	if v := strings.TrimSpace(getenv(EnvWeather)); v != "" {
		c.Weather = v
	}
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(getenv(EnvNoise)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvNoise)
		}
		c.AmbientNoise = n
	}
	return nil
}

// Initial converts the settings to a starting panel state. Unknown names
// fall back to defaults; Normalize does the rest.
func (c Config) Initial() engine.Configuration {
	out := engine.DefaultConfiguration()
	if e, ok := engine.ParseEnvironment(c.Environment); ok {
		out.Environment = e
	}
	if t, ok := engine.ParseTimeOfDay(c.TimeOfDay); ok {
		out.TimeOfDay = t
	}
	if w, ok := engine.ParseWeather(c.Weather); ok {
		out.WeatherEffect = w
	}
	out.AmbientNoiseLevel = c.AmbientNoise
	out.ShowTips = c.ShowTips
	out.HasCompanions = c.Companions
	return out.Normalize()
}

// TransitionWindow returns the configured window, 1s when unset or invalid.
func (c Config) TransitionWindow() time.Duration {
	if c.TransitionMS <= 0 {
		return engine.TransitionWindow
	}
	return time.Duration(c.TransitionMS) * time.Millisecond
}
