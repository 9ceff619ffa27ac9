package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
	"github.com/DaanHessen/studyspace-tui/internal/text"
	"github.com/DaanHessen/studyspace-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, cfg util.Config, version string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	changes := make(chan struct{}, 1)
	ctrl := engine.NewController(
		engine.WithInitial(cfg.Initial()),
		engine.WithTransitionWindow(cfg.TransitionWindow()),
		engine.WithLogger(log),
		engine.WithOnChange(func(engine.Configuration) {
			// Coalesce: one pending signal is enough, the model re-reads the snapshot.
			select {
			case changes <- struct{}{}:
			default:
			}
		}),
	)
	defer ctrl.Close()

	var renderer text.Renderer = text.NewPlainRenderer()
	if gr, err := text.NewGlamourRenderer("", controlWidth-6); err == nil {
		renderer = text.WithFallback(gr, renderer)
	} else {
		log.Warn("markdown renderer unavailable", zap.Error(err))
	}

	m := newModel(ctrl, changes, renderer, cfg, version, log)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
