package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourtree/internal/bench"
	"github.com/katalvlaran/tourtree/internal/buildinfo"
)

// runFlags holds flag values before they are merged into a bench.Config.
type runFlags struct {
	cfg        bench.Config
	configPath string
	noGuard    bool
	verbose    bool
}

// RootCommand creates the tourbench command.
func (c *CLI) RootCommand() *cobra.Command {
	root, _ := c.rootCommand()
	return root
}

func (c *CLI) rootCommand() (*cobra.Command, *runFlags) {
	f := &runFlags{cfg: bench.DefaultConfig()}

	root := &cobra.Command{
		Use:   "tourbench",
		Short: "Time divide-and-conquer tour construction over random points",
		Long: `tourbench builds a partition tree over random points in a rectangle,
times the construction of a closed tour through every point, and prints
"Time for TSP = <seconds>". The tree and the finished tour can be dumped
as coordinate lines, optionally framed for jgraph.`,
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runBench(ctx, cfg, cmd.OutOrStdout())
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	fs := root.Flags()
	fs.IntVarP(&f.cfg.Size, "size", "n", f.cfg.Size, "number of points")
	fs.IntVarP(&f.cfg.Procs, "procs", "p", f.cfg.Procs, "number of partitions")
	fs.IntVar(&f.cfg.MinSize, "min-size", f.cfg.MinSize, "partition size below which a tour is grown by insertion")
	fs.Int64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "random seed (0 = built-in default)")
	fs.BoolVar(&f.cfg.PrintTree, "print-tree", f.cfg.PrintTree, "print the tree in pre-order before solving")
	fs.BoolVar(&f.cfg.PrintRing, "print-ring", f.cfg.PrintRing, "print the tour after solving")
	fs.BoolVar(&f.cfg.JGraph, "jgraph", f.cfg.JGraph, "frame the printed tour as a jgraph curve")
	fs.StringVar(&f.cfg.Nearest, "nearest", f.cfg.Nearest, "nearest-member lookup: linear or rtree")
	fs.BoolVar(&f.cfg.Parallel, "parallel", f.cfg.Parallel, "solve sibling partitions concurrently")
	fs.BoolVar(&f.cfg.TwoOpt, "two-opt", f.cfg.TwoOpt, "polish the tour with 2-opt")
	fs.IntVar(&f.cfg.TwoOptIters, "two-opt-iters", f.cfg.TwoOptIters, "cap on accepted 2-opt moves (0 = unlimited)")
	fs.DurationVar(&f.cfg.TimeLimit, "time-limit", f.cfg.TimeLimit, "2-opt time budget (0 = unlimited)")
	fs.BoolVar(&f.cfg.Verify, "verify", f.cfg.Verify, "check the finished tour against the tree")
	fs.BoolVar(&f.noGuard, "no-guard", false, "walk the tour without a length bound")
	fs.StringVar(&f.cfg.TreeDOTFile, "tree-dot", "", "write the tree as Graphviz DOT to this file")
	fs.StringVar(&f.cfg.DOTFile, "dot", "", "write the tour as Graphviz DOT to this file")
	fs.StringVar(&f.cfg.SVGFile, "svg", "", "render the tour as SVG to this file")
	fs.StringVar(&f.cfg.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this file")
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	return root, f
}

// overrides maps each config flag to the field it sets.
var overrides = map[string]func(dst *bench.Config, src bench.Config){
	"size":          func(d *bench.Config, s bench.Config) { d.Size = s.Size },
	"procs":         func(d *bench.Config, s bench.Config) { d.Procs = s.Procs },
	"min-size":      func(d *bench.Config, s bench.Config) { d.MinSize = s.MinSize },
	"seed":          func(d *bench.Config, s bench.Config) { d.Seed = s.Seed },
	"print-tree":    func(d *bench.Config, s bench.Config) { d.PrintTree = s.PrintTree },
	"print-ring":    func(d *bench.Config, s bench.Config) { d.PrintRing = s.PrintRing },
	"jgraph":        func(d *bench.Config, s bench.Config) { d.JGraph = s.JGraph },
	"nearest":       func(d *bench.Config, s bench.Config) { d.Nearest = s.Nearest },
	"parallel":      func(d *bench.Config, s bench.Config) { d.Parallel = s.Parallel },
	"two-opt":       func(d *bench.Config, s bench.Config) { d.TwoOpt = s.TwoOpt },
	"two-opt-iters": func(d *bench.Config, s bench.Config) { d.TwoOptIters = s.TwoOptIters },
	"time-limit":    func(d *bench.Config, s bench.Config) { d.TimeLimit = s.TimeLimit },
	"verify":        func(d *bench.Config, s bench.Config) { d.Verify = s.Verify },
	"tree-dot":      func(d *bench.Config, s bench.Config) { d.TreeDOTFile = s.TreeDOTFile },
	"dot":           func(d *bench.Config, s bench.Config) { d.DOTFile = s.DOTFile },
	"svg":           func(d *bench.Config, s bench.Config) { d.SVGFile = s.SVGFile },
	"metrics-file":  func(d *bench.Config, s bench.Config) { d.MetricsFile = s.MetricsFile },
}

// resolve layers defaults, the config file and explicitly set flags.
func (f *runFlags) resolve(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = loadConfig(f.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply(&cfg, f.cfg)
		}
	}
	if f.noGuard {
		cfg.GuardRing = false
	}
	return cfg, cfg.Validate()
}

func runBench(ctx context.Context, cfg bench.Config, out io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	rep, err := bench.Run(ctx, cfg, out, logger)
	if err != nil {
		return err
	}
	prog.done("run " + rep.RunID + " finished")
	return nil
}
