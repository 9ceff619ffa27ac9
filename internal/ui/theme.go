package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
)

const defaultTheme = "catppuccin"

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

// Scene tints per environment, shared by every palette.
var sceneTints = map[engine.Environment]lipgloss.Color{
	engine.EnvLibrary: lipgloss.Color("#c9a66b"),
	engine.EnvForest:  lipgloss.Color("#6fbf73"),
	engine.EnvCafe:    lipgloss.Color("#c08457"),
	engine.EnvBeach:   lipgloss.Color("#5fb3d9"),
}

var palettes = map[string]palette{
	"catppuccin": {
		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Panel:      lipgloss.Color("#45475a"),
		Text:       lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#a6adc8"),
		Accent:     lipgloss.Color("#cba6f7"),
		AccentAlt:  lipgloss.Color("#f38ba8"),
		Border:     lipgloss.Color("#585b70"),
		Success:    lipgloss.Color("#94e2d5"),
		Warning:    lipgloss.Color("#f9e2af"),
		BarFill:    lipgloss.Color("#94e2d5"),
		BarEmpty:   lipgloss.Color("#313244"),
	},
	"dracula": {
		Background: lipgloss.Color("#282a36"),
		Surface:    lipgloss.Color("#343746"),
		Panel:      lipgloss.Color("#3c4053"),
		Text:       lipgloss.Color("#f8f8f2"),
		Muted:      lipgloss.Color("#6272a4"),
		Accent:     lipgloss.Color("#ff79c6"),
		AccentAlt:  lipgloss.Color("#bd93f9"),
		Border:     lipgloss.Color("#44475a"),
		Success:    lipgloss.Color("#50fa7b"),
		Warning:    lipgloss.Color("#f1fa8c"),
		BarFill:    lipgloss.Color("#50fa7b"),
		BarEmpty:   lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Panel:      lipgloss.Color("#504945"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#a89984"),
		Accent:     lipgloss.Color("#fabd2f"),
		AccentAlt:  lipgloss.Color("#d3869b"),
		Border:     lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fe8019"),
		BarFill:    lipgloss.Color("#b8bb26"),
		BarEmpty:   lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Background: lipgloss.Color("#002b36"),
		Surface:    lipgloss.Color("#073642"),
		Panel:      lipgloss.Color("#0a3a45"),
		Text:       lipgloss.Color("#fdf6e3"),
		Muted:      lipgloss.Color("#93a1a1"),
		Accent:     lipgloss.Color("#b58900"),
		AccentAlt:  lipgloss.Color("#268bd2"),
		Border:     lipgloss.Color("#586e75"),
		Success:    lipgloss.Color("#859900"),
		Warning:    lipgloss.Color("#cb4b16"),
		BarFill:    lipgloss.Color("#859900"),
		BarEmpty:   lipgloss.Color("#073642"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

func knownTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

func sceneTint(env engine.Environment) lipgloss.Color {
	if c, ok := sceneTints[env]; ok {
		return c
	}
	return sceneTints[engine.EnvLibrary]
}

type styles struct {
	header   lipgloss.Style
	footer   lipgloss.Style
	scene    lipgloss.Style
	faded    lipgloss.Style
	controls lipgloss.Style
	heading  lipgloss.Style
	selected lipgloss.Style
	option   lipgloss.Style
	muted    lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	card     lipgloss.Style
	overlay  lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
}

// buildStyles derives every style from the palette; the scene border takes
// the environment tint and night dims the scene text.
func buildStyles(p palette, cfg engine.Configuration) styles {
	tint := sceneTint(cfg.Environment)
	sceneFg := p.Text
	if cfg.TimeOfDay == engine.TimeNight {
		sceneFg = p.Muted
	}
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface).Padding(0, 1),
		footer:   lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface).Padding(0, 1),
		scene:    lipgloss.NewStyle().Foreground(sceneFg).Border(lipgloss.RoundedBorder()).BorderForeground(tint).Padding(0, 1),
		faded:    lipgloss.NewStyle().Foreground(p.Panel).Faint(true).Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		controls: lipgloss.NewStyle().Foreground(p.Text).Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Padding(0, 1),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Accent).Padding(0, 1),
		option:   lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		button:   lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.AccentAlt).Padding(0, 2),
		disabled: lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface).Padding(0, 2),
		card:     lipgloss.NewStyle().Foreground(p.Text).Background(p.Panel).Padding(0, 1),
		overlay:  lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Border(lipgloss.DoubleBorder()).BorderForeground(p.Warning).Padding(0, 1),
		barFill:  lipgloss.NewStyle().Foreground(p.BarFill),
		barEmpty: lipgloss.NewStyle().Foreground(p.BarEmpty),
	}
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
