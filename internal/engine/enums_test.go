package engine

import "testing"

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"library": EnvLibrary,
		" Forest": EnvForest,
		"CAFE":    EnvCafe,
		"café":    EnvCafe,
		"Café":    EnvCafe,
		"beach":   EnvBeach,
	}
	for in, want := range cases {
		got, ok := ParseEnvironment(in)
		if !ok || got != want {
			t.Fatalf("ParseEnvironment(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseEnvironment("office"); ok {
		t.Fatal("unknown environment accepted")
	}
}

func TestParseTimeAndWeather(t *testing.T) {
	if v, ok := ParseTimeOfDay("Night"); !ok || v != TimeNight {
		t.Fatalf("night: %q %v", v, ok)
	}
	if _, ok := ParseTimeOfDay("dawn"); ok {
		t.Fatal("dawn accepted")
	}
	if v, ok := ParseWeather("WIND"); !ok || v != WeatherWind {
		t.Fatalf("wind: %q %v", v, ok)
	}
	if _, ok := ParseWeather("hail"); ok {
		t.Fatal("hail accepted")
	}
}

func TestLabels(t *testing.T) {
	if EnvCafe.Label() != "Café" {
		t.Fatalf("cafe label %q", EnvCafe.Label())
	}
	if WeatherRain.Label() != "Gentle Rain" || WeatherWind.Label() != "Light Breeze" {
		t.Fatal("weather labels")
	}
	if EnvLibrary.Outdoor() || !EnvBeach.Outdoor() || Environment("x").Outdoor() {
		t.Fatal("outdoor classification")
	}
	if got := ListEnvironments(); len(got) != 4 {
		t.Fatalf("ListEnvironments len %d", len(got))
	}
}
