package engine

import "time"

const (
	// TransitionWindow is how long IsTransitioning stays set after a scene change.
	TransitionWindow = 1000 * time.Millisecond

	MinNoise     = 0
	MaxNoise     = 100
	DefaultNoise = 30
)

// Configuration holds everything the panel can show. It is a value type;
// Controller.Snapshot hands out copies.
type Configuration struct {
	Environment       Environment `json:"environment" yaml:"environment"`
	TimeOfDay         TimeOfDay   `json:"time_of_day" yaml:"time_of_day"`
	AmbientNoiseLevel int         `json:"ambient_noise" yaml:"ambient_noise"`
	ShowTips          bool        `json:"show_tips" yaml:"show_tips"`
	HasCompanions     bool        `json:"companions" yaml:"companions"`
	VRModeActive      bool        `json:"vr_mode" yaml:"vr_mode"`
	WeatherEffect     Weather     `json:"weather" yaml:"weather"`
	IsTransitioning   bool        `json:"transitioning" yaml:"-"`
}

// DefaultConfiguration is the state a fresh panel starts in.
func DefaultConfiguration() Configuration {
	return Configuration{
		Environment:       EnvLibrary,
		TimeOfDay:         TimeDay,
		AmbientNoiseLevel: DefaultNoise,
		ShowTips:          true,
		WeatherEffect:     WeatherClear,
	}
}

// Normalize repairs a configuration built outside the setters: unknown enum
// values fall back to defaults, noise is clamped and indoor weather cleared.
// IsTransitioning is always reset; a starting state never opens a window.
func (c Configuration) Normalize() Configuration {
	def := DefaultConfiguration()
	if !c.Environment.Validate() {
		c.Environment = def.Environment
	}
	if !c.TimeOfDay.Validate() {
		c.TimeOfDay = def.TimeOfDay
	}
	if !c.WeatherEffect.Validate() || !c.Environment.Outdoor() {
		c.WeatherEffect = WeatherClear
	}
	c.AmbientNoiseLevel = ClampNoise(c.AmbientNoiseLevel)
	c.IsTransitioning = false
	return c
}

// ClampNoise bounds n to [MinNoise, MaxNoise].
func ClampNoise(n int) int {
	if n < MinNoise {
		return MinNoise
	}
	if n > MaxNoise {
		return MaxNoise
	}
	return n
}
