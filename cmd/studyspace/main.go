package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DaanHessen/studyspace-tui/internal/engine"
	"github.com/DaanHessen/studyspace-tui/internal/ui"
	"github.com/DaanHessen/studyspace-tui/internal/util"
)

var version = "0.1.0"

type options struct {
	configPath  string
	environment string
	timeOfDay   string
	weather     string
	noise       int
	theme       string
	logFile     string
	debug       bool
	asJSON      bool
}

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "studyspace",
		Short: "VR Study Spaces customization panel",
		Long: `Pick a study environment (library, forest, café, beach), time of day,
weather, ambient sound and companions in an interactive terminal panel.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := buildLogger(cfg.LogFile, cfg.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			logger.Info("starting panel", zap.String("version", version), zap.String("theme", cfg.Theme))
			return ui.Run(cmd.Context(), cfg, version, logger)
		},
	}
	root.SetOut(out)
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (default $"+util.EnvConfigPath+")")
	pf.StringVar(&opts.environment, "environment", "", "starting environment: library|forest|cafe|beach")
	pf.StringVar(&opts.timeOfDay, "time", "", "starting time of day: day|night")
	pf.StringVar(&opts.weather, "weather", "", "starting weather: clear|rain|wind (outdoor environments only)")
	pf.IntVar(&opts.noise, "noise", engine.DefaultNoise, "starting ambient noise level 0-100")
	pf.StringVar(&opts.theme, "theme", "", "color theme: catppuccin|dracula|gruvbox|solarized_dark")
	pf.StringVar(&opts.logFile, "log-file", "", "write structured logs to this file")
	pf.BoolVar(&opts.debug, "debug", false, "debug-level logging")

	root.AddCommand(newDescribeCmd(opts), newVersionCmd())
	return root
}

func newDescribeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the background descriptor and visible sections without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := buildLogger(cfg.LogFile, cfg.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctrl := engine.NewController(engine.WithInitial(cfg.Initial()), engine.WithLogger(logger))
			defer ctrl.Close()
			return describe(cmd.OutOrStdout(), ctrl, cfg.Background, opts.asJSON)
		},
	}
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "studyspace", version)
		},
	}
}

type description struct {
	Configuration engine.Configuration `json:"configuration"`
	Descriptor    string               `json:"descriptor"`
	URL           string               `json:"url"`
	Sections      engine.Sections      `json:"sections"`
}

func describe(w io.Writer, ctrl *engine.Controller, bg util.Background, asJSON bool) error {
	snap := ctrl.Snapshot()
	d := description{
		Configuration: snap,
		Descriptor:    engine.BackgroundDescriptor(snap),
		URL:           engine.BackgroundURL(snap, bg.BaseURL, bg.Width, bg.Height),
		Sections:      engine.VisibleSections(snap),
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	s := d.Sections
	fmt.Fprintf(w, "descriptor:  %s\n", d.Descriptor)
	fmt.Fprintf(w, "url:         %s\n", d.URL)
	fmt.Fprintf(w, "noise:       %d\n", snap.AmbientNoiseLevel)
	fmt.Fprintf(w, "vr:          %s\n", engine.VRModeLabel(snap.VRModeActive))
	fmt.Fprintf(w, "time:        %s\n", s.TimeIndicator)
	fmt.Fprintf(w, "weather ui:  %v\n", s.WeatherSelector)
	fmt.Fprintf(w, "companions:  %v\n", s.CompanionIndicator)
	fmt.Fprintf(w, "rain:        %v\n", s.RainOverlay)
	fmt.Fprintf(w, "wind:        %v\n", s.WindIndicator)
	if s.TipCard {
		fmt.Fprintf(w, "tip:         %s\n", s.TipText)
	}
	return nil
}

// resolveConfig layers defaults, YAML, environment variables and explicit flags.
func resolveConfig(cmd *cobra.Command, opts *options) (util.Config, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(util.EnvConfigPath)
	}
	cfg, err := util.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("environment") {
		if _, ok := engine.ParseEnvironment(opts.environment); !ok {
			return cfg, fmt.Errorf("unknown environment %q", opts.environment)
		}
		cfg.Environment = opts.environment
	}
	if flags.Changed("time") {
		if _, ok := engine.ParseTimeOfDay(opts.timeOfDay); !ok {
			return cfg, fmt.Errorf("unknown time of day %q", opts.timeOfDay)
		}
		cfg.TimeOfDay = opts.timeOfDay
	}
	if flags.Changed("weather") {
		if _, ok := engine.ParseWeather(opts.weather); !ok {
			return cfg, fmt.Errorf("unknown weather %q", opts.weather)
		}
		cfg.Weather = opts.weather
	}
	if flags.Changed("noise") {
		cfg.AmbientNoise = opts.noise
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	cfg.LogFile = opts.logFile
	cfg.Debug = opts.debug
	return cfg, nil
}

// buildLogger writes JSON logs to path. The TUI owns the terminal, so with
// no path logging is discarded.
func buildLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
