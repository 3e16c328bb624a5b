package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	scale      int
	speed      float64
	tps        int
	fps        int
	theme      string
	configFile string
	preset     string
	logFile    string
	logLevel   string
	// run
	ticks int
	watch bool
	// config init
	force bool
)

// main registers the commands and runs the live view when no subcommand is
// given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "rule30life",
		Short:        "Rule 30 feeding Conway's Game of Life",
		SilenceUsage: true,
		RunE:         runLive,
	}
	addSimFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step the simulation headless and print metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 500, "number of ticks to run")
	runCmd.Flags().BoolVar(&watch, "watch", false, "print frames while running at --tps")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a window (needs -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, runCmd, guiCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&width, "width", 0, "grid width in cells")
	f.IntVar(&height, "height", 0, "total height in cells, split between both halves")
	f.IntVar(&scale, "scale", 0, "pixels per cell (gui)")
	f.Float64Var(&speed, "speed", 1.0, "initial speed multiplier")
	f.IntVar(&tps, "tps", 0, "ticks per second at speed 1")
	f.IntVar(&fps, "fps", 0, "frames per second")
	f.StringVar(&theme, "theme", "", "colour theme (live)")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
