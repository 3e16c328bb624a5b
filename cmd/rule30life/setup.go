package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/rule30life/internal/config"
	"github.com/san-kum/rule30life/internal/control"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/sim"
)

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to --log-file when given and to fallback otherwise. The
// returned func closes the log file.
func newLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rule30life",
	})
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}

// newHarness builds the simulation, its harness and a controller sharing the
// harness speed.
func newHarness(cfg *config.Config, logger *log.Logger, observers ...harness.Observer) (*harness.Harness, *control.Controller, error) {
	s, err := sim.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Height%2 != 0 {
		logger.Warn("odd height, last row dropped", "height", cfg.Height, "half", s.HalfHeight())
	}

	sp := harness.NewSpeed()
	if err := sp.Set(cfg.Speed); err != nil {
		return nil, nil, err
	}
	km, err := cfg.KeyMap()
	if err != nil {
		return nil, nil, err
	}

	opts := []harness.Option{
		harness.WithBaseInterval(cfg.TickInterval()),
		harness.WithSpeed(sp),
		harness.WithLogger(logger),
	}
	for _, o := range observers {
		opts = append(opts, harness.WithObserver(o))
	}
	h := harness.New(s, opts...)

	ctrl := control.NewController(km, sp)
	ctrl.SetLogger(logger)
	logger.Debug("harness ready", "width", h.Width(), "height", h.Height(), "interval", cfg.TickInterval())
	return h, ctrl, nil
}
