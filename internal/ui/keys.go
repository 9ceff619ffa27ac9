package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Library     key.Binding
	Forest      key.Binding
	Cafe        key.Binding
	Beach       key.Binding
	Day         key.Binding
	Night       key.Binding
	Clear       key.Binding
	Rain        key.Binding
	Wind        key.Binding
	NoiseDown   key.Binding
	NoiseUp     key.Binding
	NoiseDown10 key.Binding
	NoiseUp10   key.Binding
	Companions  key.Binding
	Tips        key.Binding
	ToggleVR    key.Binding
	ExitVR      key.Binding
	Theme       key.Binding
	About       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Library:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "library")),
		Forest:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "forest")),
		Cafe:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "café")),
		Beach:       key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "beach")),
		Day:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Night:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "night")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Rain:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rain")),
		Wind:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "breeze")),
		NoiseDown:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "quieter")),
		NoiseUp:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "louder")),
		NoiseDown10: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←", "-10")),
		NoiseUp10:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→", "+10")),
		Companions:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "companions")),
		Tips:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tips")),
		ToggleVR:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "vr mode")),
		ExitVR:      key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "exit vr")),
		Theme:       key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		About:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Library, k.Forest, k.Cafe, k.Beach, k.Day, k.Night, k.ToggleVR, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Library, k.Forest, k.Cafe, k.Beach},
		{k.Day, k.Night, k.Clear, k.Rain, k.Wind},
		{k.NoiseDown, k.NoiseUp, k.NoiseDown10, k.NoiseUp10},
		{k.Companions, k.Tips, k.ToggleVR, k.ExitVR},
		{k.Theme, k.About, k.Help, k.Quit},
	}
}
