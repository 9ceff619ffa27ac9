package engine

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBackgroundBase   = "/api/placeholder"
	DefaultBackgroundWidth  = 1200
	DefaultBackgroundHeight = 600
)

// Indicator names the time-of-day glyph shown in the scene corner.
type Indicator string

const (
	IndicatorSun  Indicator = "sun"
	IndicatorMoon Indicator = "moon"
)

var studyTips = map[Environment]string{
	EnvLibrary: "Libraries promote focus through their quiet atmosphere and academic surroundings.",
	EnvForest:  "Natural settings can reduce stress and improve concentration and creativity.",
	EnvCafe:    "Ambient noise in cafes can enhance creativity for some people.",
	EnvBeach:   "The sound of waves can be calming and help with stress reduction.",
}

var tipIcons = map[Environment]string{
	EnvLibrary: "book-open",
	EnvForest:  "tree",
	EnvCafe:    "coffee",
	EnvBeach:   "wind",
}

// TipFor returns the study tip for env. Anything unrecognised gets the library tip.
func TipFor(env Environment) string {
	if tip, ok := studyTips[env]; ok {
		return tip
	}
	return studyTips[EnvLibrary]
}

// TipIcon names the icon shown beside the tip card.
func TipIcon(env Environment) string {
	if icon, ok := tipIcons[env]; ok {
		return icon
	}
	return tipIcons[EnvLibrary]
}

// BackgroundDescriptor encodes environment and time, plus a weather suffix
// only for outdoor scenes with weather other than clear.
func BackgroundDescriptor(c Configuration) string {
	d := fmt.Sprintf("%s-%s", c.Environment, c.TimeOfDay)
	if c.WeatherEffect != WeatherClear && c.Environment != EnvLibrary {
		d += "-" + string(c.WeatherEffect)
	}
	return d
}

// BackgroundURL builds the placeholder image URL for the descriptor.
// Zero or negative dimensions fall back to 1200x600, an empty base to /api/placeholder.
func BackgroundURL(c Configuration, base string, width, height int) string {
	if base == "" {
		base = DefaultBackgroundBase
	}
	if width <= 0 {
		width = DefaultBackgroundWidth
	}
	if height <= 0 {
		height = DefaultBackgroundHeight
	}
	q := url.Values{}
	q.Set("text", BackgroundDescriptor(c))
	return fmt.Sprintf("%s/%d/%d?%s", strings.TrimRight(base, "/"), width, height, q.Encode())
}

// Sections lists which optional regions of the panel are rendered.
type Sections struct {
	WeatherSelector    bool      `json:"weather_selector"`
	CompanionIndicator bool      `json:"companion_indicator"`
	RainOverlay        bool      `json:"rain_overlay"`
	WindIndicator      bool      `json:"wind_indicator"`
	TipCard            bool      `json:"tip_card"`
	TipText            string    `json:"tip_text,omitempty"`
	TipIcon            string    `json:"tip_icon,omitempty"`
	VROverlay          bool      `json:"vr_overlay"`
	EnterVREnabled     bool      `json:"enter_vr_enabled"`
	TimeIndicator      Indicator `json:"time_indicator"`
	Faded              bool      `json:"faded"`
}

// VisibleSections derives the conditional regions from a snapshot.
func VisibleSections(c Configuration) Sections {
	outdoor := c.Environment != EnvLibrary
	s := Sections{
		WeatherSelector:    outdoor,
		CompanionIndicator: c.HasCompanions && !c.VRModeActive,
		RainOverlay:        c.WeatherEffect == WeatherRain && outdoor,
		WindIndicator:      c.WeatherEffect == WeatherWind && outdoor,
		TipCard:            c.ShowTips,
		VROverlay:          c.VRModeActive,
		EnterVREnabled:     !c.VRModeActive,
		TimeIndicator:      IndicatorSun,
		Faded:              c.IsTransitioning,
	}
	if c.TimeOfDay == TimeNight {
		s.TimeIndicator = IndicatorMoon
	}
	if s.TipCard {
		s.TipText = TipFor(c.Environment)
		s.TipIcon = TipIcon(c.Environment)
	}
	return s
}

// VRModeLabel is the header switch caption.
func VRModeLabel(active bool) string {
	if active {
		return "VR Mode On"
	}
	return "VR Mode Off"
}
