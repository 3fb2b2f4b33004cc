package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/tilelight/internal/tilelight"
)

// version is overridden at link time.
var version = "dev"

type rootFlags struct {
	samples   int
	intensity float64
	lightRng  int
	seed      int64
	width     int
	height    int
	maxLights int
	placement string
	workers   int
	color     string
	debug     bool
	noPrompt  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "tilelight [scene.json]",
		Short: "Render point-light brightness on a tile grid in the terminal.",
		Long: `tilelight places point lights on a tile grid, sums their ` +
			`inverse-square contribution on every tile within range and ` +
			`prints the grid as colored terminal cells, once per sample. ` +
			`Inputs not given as flags are asked for on stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := os.Getenv("TILELIGHT_CONFIG")
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := tilelight.LoadConfig(path)
			if err != nil {
				return err
			}
			if err := applyEnv(cfg); err != nil {
				return err
			}
			applyFlags(cmd, &f, cfg)
			if f.debug {
				tilelight.Debug = true
			}

			rw := tilelight.IO{
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Terminal: stdoutIsTerminal(cmd),
			}
			if f.noPrompt {
				rw.In = nil
			}
			return tilelight.Run(cmd.Context(), cfg, rw)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.samples, "samples", "n", 0, "number of samples (asked for when unset)")
	fl.Float64VarP(&f.intensity, "intensity", "i", 0, "base light intensity (asked for when unset)")
	fl.IntVarP(&f.lightRng, "range", "r", 0, "light range in tiles (asked for when unset)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fl.IntVar(&f.width, "width", 0, "grid width in tiles")
	fl.IntVar(&f.height, "height", 0, "grid height in tiles")
	fl.IntVar(&f.maxLights, "max-lights", 0, "lights placed per sample by the random placer")
	fl.StringVar(&f.placement, "placement", "", "light placement: random or fixed (scene lights)")
	fl.IntVar(&f.workers, "workers", 0, "accumulate with this many row-band workers")
	fl.StringVar(&f.color, "color", "", "output colors: auto, ansi or plain")
	fl.BoolVar(&f.debug, "debug", false, "verbose debug output on stderr")
	fl.BoolVar(&f.noPrompt, "no-prompt", false, "use defaults instead of asking for unset inputs")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// applyEnv layers TILELIGHT_SEED and NO_COLOR over the scene file.
func applyEnv(cfg *tilelight.Config) error {
	if s := os.Getenv("TILELIGHT_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("TILELIGHT_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = tilelight.ColorPlain
	}
	return nil
}

// applyFlags overrides the config with the flags given on the command line.
func applyFlags(cmd *cobra.Command, f *rootFlags, cfg *tilelight.Config) {
	fl := cmd.Flags()
	if fl.Changed("samples") {
		cfg.Samples = f.samples
	}
	if fl.Changed("intensity") {
		v := f.intensity
		cfg.Intensity = &v
	}
	if fl.Changed("range") {
		cfg.Range = f.lightRng
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("width") {
		cfg.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Height = f.height
	}
	if fl.Changed("max-lights") {
		cfg.MaxLights = f.maxLights
	}
	if fl.Changed("placement") {
		cfg.Placement = f.placement
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("color") {
		cfg.Color = f.color
	}
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tilelight version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tilelight %s\n", version)
		},
	}
}

// execute runs the root command and returns the process exit code.
func execute(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
