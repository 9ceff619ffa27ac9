package engine

import "strings"

// String backed enums so values round-trip through flags, YAML and JSON unchanged.

type Environment string
type TimeOfDay string
type Weather string

const (
	EnvLibrary Environment = "library"
	EnvForest  Environment = "forest"
	EnvCafe    Environment = "cafe"
	EnvBeach   Environment = "beach"
)

var AllEnvironments = []Environment{EnvLibrary, EnvForest, EnvCafe, EnvBeach}

const (
	TimeDay   TimeOfDay = "day"
	TimeNight TimeOfDay = "night"
)

var AllTimesOfDay = []TimeOfDay{TimeDay, TimeNight}

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherWind  Weather = "wind"
)

var AllWeather = []Weather{WeatherClear, WeatherRain, WeatherWind}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (e Environment) Validate() bool { return contains(AllEnvironments, e) }
func (t TimeOfDay) Validate() bool   { return contains(AllTimesOfDay, t) }
func (w Weather) Validate() bool     { return contains(AllWeather, w) }

// Outdoor reports whether weather effects apply to the environment.
func (e Environment) Outdoor() bool { return e.Validate() && e != EnvLibrary }

// Label is the human-facing tab title.
func (e Environment) Label() string {
	switch e {
	case EnvLibrary:
		return "Library"
	case EnvForest:
		return "Forest"
	case EnvCafe:
		return "Café"
	case EnvBeach:
		return "Beach"
	}
	return string(e)
}

func (t TimeOfDay) Label() string {
	if t == TimeNight {
		return "Night"
	}
	return "Day"
}

func (w Weather) Label() string {
	switch w {
	case WeatherRain:
		return "Gentle Rain"
	case WeatherWind:
		return "Light Breeze"
	}
	return "Clear"
}

// ParseEnvironment accepts any casing and the accented "café".
func ParseEnvironment(s string) (Environment, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "café" {
		v = string(EnvCafe)
	}
	e := Environment(v)
	return e, e.Validate()
}

func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	t := TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Validate()
}

func ParseWeather(s string) (Weather, bool) {
	w := Weather(strings.ToLower(strings.TrimSpace(s)))
	return w, w.Validate()
}

// List helpers
func ListEnvironments() []Environment { return append([]Environment{}, AllEnvironments...) }
func ListTimesOfDay() []TimeOfDay     { return append([]TimeOfDay{}, AllTimesOfDay...) }
func ListWeather() []Weather          { return append([]Weather{}, AllWeather...) }
