package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
)

// Renderer turns panel markdown into terminal output.
type Renderer interface {
	Render(md string) (string, error)
}

// NewGlamourRenderer renders with a glamour standard style ("dark", "light",
// "notty", ...). An empty style asks glamour to detect the terminal.
func NewGlamourRenderer(style string, width int) (Renderer, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("glamour renderer: %w", err)
	}
	return r, nil
}

// plainRenderer drops markdown markers. Used when glamour is unavailable.
type plainRenderer struct{}

func NewPlainRenderer() Renderer { return plainRenderer{} }

func (plainRenderer) Render(md string) (string, error) {
	var b strings.Builder
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimLeft(line, "#> ")
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "_", "")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// WithFallback returns a renderer that prefers primary and falls back to backup on error.
func WithFallback(primary, fallback Renderer) Renderer {
	return &fallbackRenderer{p: primary, f: fallback}
}

type fallbackRenderer struct{ p, f Renderer }

func (r *fallbackRenderer) Render(md string) (string, error) {
	if r.p == nil {
		return r.f.Render(md)
	}
	if s, err := r.p.Render(md); err == nil {
		return s, nil
	}
	return r.f.Render(md)
}

// TipCard is the markdown for the study tip card, empty when the card is hidden.
func TipCard(s engine.Sections) string {
	if !s.TipCard {
		return ""
	}
	return fmt.Sprintf("**Study tip** _(%s)_\n\n%s\n", s.TipIcon, s.TipText)
}

// VROverlay is shown over the scene while VR mode is on.
func VROverlay() string {
	return "## VR Mode Active\n\nPlease put on your VR headset to enter the immersive study environment.\n\n" +
		"Press **x** to exit VR mode.\n"
}

// About describes the panel and its controls.
func About(cfg engine.Configuration, version string) string {
	var b strings.Builder
	b.WriteString("# VR Study Spaces\n\n")
	b.WriteString(fmt.Sprintf("Version %s. Current scene: **%s**, %s.\n\n", version, cfg.Environment.Label(), strings.ToLower(cfg.TimeOfDay.Label())))
	b.WriteString("Pick a study environment, set the time of day and, outdoors, a weather effect. ")
	b.WriteString("Adjust ambient sound, invite virtual study companions and toggle study tips. ")
	b.WriteString("Scene changes fade in over one second.\n\n")
	b.WriteString("## Environments\n\n")
	for _, env := range engine.AllEnvironments {
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", env.Label(), engine.TipFor(env)))
	}
	return b.String()
}
