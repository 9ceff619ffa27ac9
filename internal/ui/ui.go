package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
	"github.com/DaanHessen/studyspace-tui/internal/text"
	"github.com/DaanHessen/studyspace-tui/internal/util"
)

const (
	viewPanel = "panel"
	viewAbout = "about"
)

const (
	noiseStep    = 1
	noiseBigStep = 10
	controlWidth = 40
)

// changedMsg tells the model to re-read the controller snapshot.
type changedMsg struct{}

type model struct {
	ctrl     *engine.Controller
	changes  <-chan struct{}
	cfg      engine.Configuration
	renderer text.Renderer
	keys     keyMap
	help     help.Model
	theme    string
	bg       util.Background
	version  string
	view     string
	width    int
	height   int
	log      *zap.Logger
}

func newModel(ctrl *engine.Controller, changes <-chan struct{}, renderer text.Renderer, cfg util.Config, version string, log *zap.Logger) model {
	if renderer == nil {
		renderer = text.NewPlainRenderer()
	}
	if log == nil {
		log = zap.NewNop()
	}
	theme := cfg.Theme
	if !knownTheme(theme) {
		theme = defaultTheme
	}
	m := model{
		ctrl:     ctrl,
		changes:  changes,
		cfg:      ctrl.Snapshot(),
		renderer: renderer,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    theme,
		bg:       cfg.Background,
		version:  version,
		view:     viewPanel,
		log:      log,
	}
	m.syncKeys()
	return m
}

// waitForChange blocks until the controller reports a mutation.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return waitForChange(m.changes) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case changedMsg:
		m.refresh()
		return m, waitForChange(m.changes)
	case tea.KeyMsg:
		if m.view == viewAbout {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.About), msg.String() == "esc":
				m.view = viewPanel
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.refresh()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Library):
		m.ctrl.SetEnvironment(engine.EnvLibrary)
	case key.Matches(msg, k.Forest):
		m.ctrl.SetEnvironment(engine.EnvForest)
	case key.Matches(msg, k.Cafe):
		m.ctrl.SetEnvironment(engine.EnvCafe)
	case key.Matches(msg, k.Beach):
		m.ctrl.SetEnvironment(engine.EnvBeach)
	case key.Matches(msg, k.Day):
		m.ctrl.SetTimeOfDay(engine.TimeDay)
	case key.Matches(msg, k.Night):
		m.ctrl.SetTimeOfDay(engine.TimeNight)
	case key.Matches(msg, k.Clear):
		m.ctrl.SetWeatherEffect(engine.WeatherClear)
	case key.Matches(msg, k.Rain):
		m.ctrl.SetWeatherEffect(engine.WeatherRain)
	case key.Matches(msg, k.Wind):
		m.ctrl.SetWeatherEffect(engine.WeatherWind)
	case key.Matches(msg, k.NoiseDown):
		m.ctrl.SetAmbientNoiseLevel(m.cfg.AmbientNoiseLevel - noiseStep)
	case key.Matches(msg, k.NoiseUp):
		m.ctrl.SetAmbientNoiseLevel(m.cfg.AmbientNoiseLevel + noiseStep)
	case key.Matches(msg, k.NoiseDown10):
		m.ctrl.SetAmbientNoiseLevel(m.cfg.AmbientNoiseLevel - noiseBigStep)
	case key.Matches(msg, k.NoiseUp10):
		m.ctrl.SetAmbientNoiseLevel(m.cfg.AmbientNoiseLevel + noiseBigStep)
	case key.Matches(msg, k.Companions):
		m.ctrl.SetHasCompanions(!m.cfg.HasCompanions)
	case key.Matches(msg, k.Tips):
		m.ctrl.SetShowTips(!m.cfg.ShowTips)
	case key.Matches(msg, k.ToggleVR):
		m.ctrl.SetVRModeActive(!m.cfg.VRModeActive)
	case key.Matches(msg, k.ExitVR):
		m.ctrl.SetVRModeActive(false)
	case key.Matches(msg, k.Theme):
		m.theme = nextThemeName(m.theme, 1)
		m.log.Debug("theme changed", zap.String("theme", m.theme))
	case key.Matches(msg, k.About):
		m.view = viewAbout
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *model) refresh() {
	m.cfg = m.ctrl.Snapshot()
	m.syncKeys()
}

// syncKeys enables only the bindings whose controls are on screen.
func (m *model) syncKeys() {
	sec := engine.VisibleSections(m.cfg)
	m.keys.Clear.SetEnabled(sec.WeatherSelector)
	m.keys.Rain.SetEnabled(sec.WeatherSelector)
	m.keys.Wind.SetEnabled(sec.WeatherSelector)
	m.keys.ExitVR.SetEnabled(sec.VROverlay)
}

func (m model) View() string {
	st := buildStyles(paletteFor(m.theme), m.cfg)
	if m.view == viewAbout {
		return m.renderAbout(st)
	}
	w := m.width
	if w <= 0 {
		w = 100
	}
	sceneWidth := w - controlWidth - 4
	if sceneWidth < 30 {
		sceneWidth = 30
	}
	header := m.renderHeader(st, w)
	scene := m.renderScene(st, sceneWidth)
	controls := st.controls.Width(controlWidth).Render(m.renderControls(st))
	body := lipgloss.JoinHorizontal(lipgloss.Top, scene, controls)
	footer := st.footer.Width(w).Render("VR Study Spaces © 2023 - Enhance your focus and productivity with immersive study environments")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer, m.help.View(m.keys))
}

// Layout rendering -----------------------------------------------------------
func (m model) renderHeader(st styles, w int) string {
	left := "📖 VR Study Spaces"
	right := engine.VRModeLabel(m.cfg.VRModeActive)
	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return st.header.Width(w).Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderScene(st styles, width int) string {
	sec := engine.VisibleSections(m.cfg)
	box := st.scene
	if sec.Faded {
		box = st.faded
	}
	if sec.VROverlay {
		return box.Width(width).Render(st.overlay.Render(m.markdown(text.VROverlay())))
	}
	var b strings.Builder
	if sec.TimeIndicator == engine.IndicatorMoon {
		b.WriteString("☾ Night")
	} else {
		b.WriteString("☀ Day")
	}
	b.WriteString("  •  " + m.cfg.Environment.Label())
	if sec.WindIndicator {
		b.WriteString("  •  ≋ Light Breeze")
	}
	b.WriteString("\n\n")
	if sec.RainOverlay {
		b.WriteString(rainLines(width-4, 3))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Scene: %s\n", engine.BackgroundDescriptor(m.cfg)))
	b.WriteString(st.muted.Render(engine.BackgroundURL(m.cfg, m.bg.BaseURL, m.bg.Width, m.bg.Height)))
	b.WriteString("\n")
	if sec.CompanionIndicator {
		b.WriteString("\n👥 Study companions are here with you\n")
	}
	if sec.Faded {
		b.WriteString("\n" + st.muted.Render("changing scene…"))
	}
	return box.Width(width).Render(b.String())
}

func (m model) renderControls(st styles) string {
	sec := engine.VisibleSections(m.cfg)
	var b strings.Builder
	b.WriteString(st.heading.Render("Customize Your Space") + "\n\n")

	b.WriteString("Study Environment\n")
	tabs := make([]string, 0, len(engine.AllEnvironments))
	for _, env := range engine.AllEnvironments {
		tabs = append(tabs, choice(st, env.Label(), env == m.cfg.Environment))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	b.WriteString("Time of Day\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		choice(st, "☀ Day", m.cfg.TimeOfDay == engine.TimeDay),
		choice(st, "☾ Night", m.cfg.TimeOfDay == engine.TimeNight)) + "\n\n")

	if sec.WeatherSelector {
		b.WriteString("Weather Effects\n")
		for _, w := range engine.AllWeather {
			b.WriteString(radio(w == m.cfg.WeatherEffect) + " " + w.Label() + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Ambient Sound %3d 🔊\n", m.cfg.AmbientNoiseLevel))
	b.WriteString(noiseBar(st, m.cfg.AmbientNoiseLevel) + "\n")
	b.WriteString(st.muted.Render("Silent" + strings.Repeat(" ", barWidth-len("Silent")-len("Ambient")) + "Ambient"))
	b.WriteString("\n\n")

	b.WriteString(checkbox(m.cfg.HasCompanions) + " Virtual Study Companions\n")
	b.WriteString(checkbox(m.cfg.ShowTips) + " Show Study Tips\n")
	if sec.TipCard {
		b.WriteString(st.card.Width(controlWidth - 4).Render(m.markdown(text.TipCard(sec))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if sec.EnterVREnabled {
		b.WriteString(st.button.Render("🎧 Enter VR Study Mode (v)"))
	} else {
		b.WriteString(st.disabled.Render("🎧 Enter VR Study Mode"))
	}
	return b.String()
}

func (m model) renderAbout(st styles) string {
	body := m.markdown(text.About(m.cfg, m.version))
	return lipgloss.JoinVertical(lipgloss.Left, body, st.muted.Render("a/esc back  q quit"))
}

func (m model) markdown(md string) string {
	out, err := m.renderer.Render(md)
	if err != nil {
		m.log.Debug("markdown render failed", zap.Error(err))
		return md
	}
	return strings.TrimSpace(out)
}

const barWidth = 30

func noiseBar(st styles, v int) string {
	fill := int((float64(v)/100.0)*float64(barWidth) + 0.5)
	if fill > barWidth {
		fill = barWidth
	}
	if fill < 0 {
		fill = 0
	}
	return st.barFill.Render(strings.Repeat("█", fill)) + st.barEmpty.Render(strings.Repeat("·", barWidth-fill))
}

func rainLines(width, rows int) string {
	if width < 4 {
		width = 4
	}
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for i := 0; i < width; i++ {
			if (i+r*2)%4 == 0 {
				b.WriteString("╎")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func choice(st styles, label string, selected bool) string {
	if selected {
		return st.selected.Render(label)
	}
	return st.option.Render(label)
}

func radio(on bool) string {
	if on {
		return "(•)"
	}
	return "( )"
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
