package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rule30life/internal/config"
	"github.com/san-kum/rule30life/internal/gui"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/metrics"
	"github.com/san-kum/rule30life/internal/tui"
	"github.com/san-kum/rule30life/internal/viz"
)

const historySize = 240

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The terminal belongs to the TUI; logs only go to an explicit file.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := metrics.NewRecorder(historySize)
	h, ctrl, err := newHarness(cfg, logger, rec)
	if err != nil {
		return err
	}

	m := viz.NewModel(h, ctrl, rec, cfg.FrameInterval(), cfg.Theme)
	h.Start(cmd.Context())
	logger.Info("live view started", "width", cfg.Width, "height", cfg.Height, "speed", cfg.Speed)

	_, runErr := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	return errors.Join(runErr, h.Stop())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", ticks)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := metrics.NewRecorder(historySize)
	var printer *tui.FramePrinter
	observers := []harness.Observer{rec}
	if watch {
		printer = tui.NewFramePrinter(os.Stdout, cfg.FPS)
		observers = append(observers, printer)
	}
	h, _, err := newHarness(cfg, logger, observers...)
	if err != nil {
		return err
	}

	start := time.Now()
	if watch {
		printer.Start()
		err = watchTicks(cmd, h, uint64(ticks), cfg.FrameInterval())
		printer.Stop()
	} else {
		err = h.StepN(ticks)
	}
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	logger.Info("run finished", "ticks", h.Ticks(), "elapsed", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "METRIC\tVALUE\n")
	fmt.Fprintf(w, "ticks\t%d\n", h.Ticks())
	fmt.Fprintf(w, "grid\t%dx%d\n", h.Width(), h.Height())
	for _, v := range rec.Values() {
		fmt.Fprintf(w, "%s\t%.4f\n", v.Name, v.Value)
	}
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed.Round(time.Microsecond))
	w.Flush()

	if hist := rec.History(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population (last ticks)"),
		))
	}
	return nil
}

// watchTicks runs the compute goroutine until n ticks have completed, the
// command is interrupted, or a step fails.
func watchTicks(cmd *cobra.Command, h *harness.Harness, n uint64, poll time.Duration) error {
	h.Start(cmd.Context())
	t := time.NewTicker(poll)
	defer t.Stop()
	for h.Ticks() < n && h.Err() == nil {
		select {
		case <-cmd.Context().Done():
			return h.Stop()
		case <-t.C:
		}
	}
	return h.Stop()
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	h, ctrl, err := newHarness(cfg, logger)
	if err != nil {
		return err
	}

	opts := gui.DefaultOptions()
	opts.Scale = cfg.Scale
	opts.FPS = cfg.FPS
	logger.Info("opening window", "width", cfg.Width*cfg.Scale, "height", h.Height()*cfg.Scale)
	return gui.Run(cmd.Context(), h, ctrl, opts)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tWIDTH\tHEIGHT\tSCALE\tSPEED")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2g\n", name, p.Width, p.Height, p.Scale, p.Speed)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "rule30life.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
