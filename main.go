package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Version of the go-life binary
const Version = "0.2.0"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go-life",
		Short: "Conway's Game of Life on a bounded grid",
		Long: `go-life simulates Conway's Game of Life on a finite board without wrap-around.

Without --generations it asks for a board size and advances one generation
every time you answer Y. With --generations it plays that many generations on its own.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGame,
	}

	defaults := utils.DefaultConfig()
	flags := cmd.Flags()
	flags.String("config", "", "JSON or YAML configuration file")
	flags.Int("rows", 0, "board rows (prompted when unset)")
	flags.Int("columns", 0, "board columns (prompted when unset)")
	flags.Int64("seed", 0, "seed for the random initial state (time-based when unset)")
	flags.Float64("density", defaults.Density, "probability that a random cell starts alive")
	flags.String("pattern", "", fmt.Sprintf("start from a centered pattern instead of random cells %v", model.PatternNames()))
	flags.String("initial-file", "", "load the first generation from a rendered grid file")
	flags.Int("generations", 0, "play this many generations without prompting")
	flags.Duration("frame-rate", defaults.FrameRate, "delay between autoplayed generations")
	flags.Bool("memory-pool", defaults.UseMemoryPool, "recycle generation buffers")
	flags.String("style", defaults.RenderStyle, "render style: digits or blocks")
	flags.Bool("clear", false, "clear the terminal before each frame")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of go-life",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "go-life version %s\n", Version)
		},
	}
}

// buildConfig loads the optional config file and applies explicitly set flags on top
func buildConfig(cmd *cobra.Command) (utils.Config, error) {
	flags := cmd.Flags()
	config := utils.DefaultConfig()

	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if flags.Changed("rows") {
		config.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("columns") {
		config.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		config.Seed = &seed
	}
	if flags.Changed("density") {
		config.Density, _ = flags.GetFloat64("density")
	}
	if flags.Changed("pattern") {
		config.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("initial-file") {
		config.InitialFile, _ = flags.GetString("initial-file")
	}
	if flags.Changed("generations") {
		config.Generations, _ = flags.GetInt("generations")
	}
	if flags.Changed("frame-rate") {
		config.FrameRate, _ = flags.GetDuration("frame-rate")
	}
	if flags.Changed("memory-pool") {
		config.UseMemoryPool, _ = flags.GetBool("memory-pool")
	}
	if flags.Changed("style") {
		config.RenderStyle, _ = flags.GetString("style")
	}
	if flags.Changed("clear") {
		config.ClearScreen, _ = flags.GetBool("clear")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-addr") {
		config.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	if config.Pattern != "" {
		if _, err := model.PatternByName(config.Pattern); err != nil {
			return config, err
		}
	}
	return config, nil
}

func runGame(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := utils.ParseLevel(config.LogLevel)
	logger := utils.NewLogger(cmd.ErrOrStderr(), level)

	ctx := cmd.Context()
	if config.Generations > 0 {
		// Handle Ctrl+C gracefully while autoplaying; the prompt loop keeps the default behaviour
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// bind before the first prompt so a busy port fails the run up front
	var metricsListener net.Listener
	if config.MetricsAddr != "" {
		if metricsListener, err = net.Listen("tcp", config.MetricsAddr); err != nil {
			return errors.Wrapf(err, "[runGame] failed to listen on %s", config.MetricsAddr)
		}
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	stats := utils.NewStats()
	g := initializeGame(config, cmd.InOrStdin(), cmd.OutOrStdout(), tty, stats, logger)

	eg, ctx := errgroup.WithContext(ctx)
	if metricsListener != nil {
		eg.Go(func() error {
			return utils.ServeMetrics(ctx, metricsListener, utils.NewMetricsHandler(stats), logger)
		})
	}
	eg.Go(func() error {
		defer cancel()
		if config.Generations > 0 {
			return g.runAuto(ctx)
		}
		return g.runInteractive(ctx)
	})

	if err = eg.Wait(); err != nil {
		return errors.Wrap(err, "[runGame]")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
