package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescriptorWeatherSuffixOutdoors(t *testing.T) {
	for _, env := range AllEnvironments {
		if env == EnvLibrary {
			continue
		}
		for _, tod := range AllTimesOfDay {
			for _, w := range AllWeather {
				cfg := Configuration{Environment: env, TimeOfDay: tod, WeatherEffect: w}
				d := BackgroundDescriptor(cfg)
				hasSuffix := strings.HasSuffix(d, "-"+string(w))
				if hasSuffix != (w != WeatherClear) {
					t.Fatalf("%s/%s/%s: descriptor %q suffix=%v", env, tod, w, d, hasSuffix)
				}
				if !strings.HasPrefix(d, string(env)+"-"+string(tod)) {
					t.Fatalf("descriptor %q missing env/time prefix", d)
				}
			}
		}
	}
}

func TestDescriptorLibraryNeverHasWeather(t *testing.T) {
	for _, w := range AllWeather {
		// Stored weather is ignored even if something bypassed the setter.
		d := BackgroundDescriptor(Configuration{Environment: EnvLibrary, TimeOfDay: TimeNight, WeatherEffect: w})
		if d != "library-night" {
			t.Fatalf("library with %s: got %q", w, d)
		}
	}
}

func TestBackgroundURL(t *testing.T) {
	cfg := Configuration{Environment: EnvForest, TimeOfDay: TimeDay, WeatherEffect: WeatherRain}
	got := BackgroundURL(cfg, "", 0, 0)
	want := "/api/placeholder/1200/600?text=forest-day-rain"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	got = BackgroundURL(cfg, "https://img.example/", 640, 320)
	if got != "https://img.example/640/320?text=forest-day-rain" {
		t.Fatalf("custom base: got %q", got)
	}
}

func TestVisibleSectionsCompanions(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.HasCompanions = true
	if !VisibleSections(cfg).CompanionIndicator {
		t.Fatal("companions without VR should be visible")
	}
	cfg.VRModeActive = true
	if VisibleSections(cfg).CompanionIndicator {
		t.Fatal("companions hidden in VR mode")
	}
}

func TestVisibleSectionsOutdoorRain(t *testing.T) {
	cfg := Configuration{
		Environment:   EnvBeach,
		TimeOfDay:     TimeNight,
		WeatherEffect: WeatherRain,
		ShowTips:      true,
	}
	want := Sections{
		WeatherSelector: true,
		RainOverlay:     true,
		TipCard:         true,
		TipText:         studyTips[EnvBeach],
		TipIcon:         "wind",
		EnterVREnabled:  true,
		TimeIndicator:   IndicatorMoon,
	}
	if diff := cmp.Diff(want, VisibleSections(cfg)); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleSectionsLibraryHidesWeather(t *testing.T) {
	cfg := Configuration{Environment: EnvLibrary, TimeOfDay: TimeDay, WeatherEffect: WeatherWind, VRModeActive: true, IsTransitioning: true}
	want := Sections{
		VROverlay:     true,
		TimeIndicator: IndicatorSun,
		Faded:         true,
	}
	if diff := cmp.Diff(want, VisibleSections(cfg)); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestTipLookup(t *testing.T) {
	if got := TipFor(EnvForest); got != "Natural settings can reduce stress and improve concentration and creativity." {
		t.Fatalf("forest tip: %q", got)
	}
	for _, env := range []Environment{"", "volcano"} {
		if got := TipFor(env); got != studyTips[EnvLibrary] {
			t.Fatalf("fallback for %q: %q", env, got)
		}
		if TipIcon(env) != "book-open" {
			t.Fatalf("fallback icon for %q", env)
		}
	}
}

func TestVRModeLabel(t *testing.T) {
	if VRModeLabel(true) != "VR Mode On" || VRModeLabel(false) != "VR Mode Off" {
		t.Fatal("unexpected VR labels")
	}
}
