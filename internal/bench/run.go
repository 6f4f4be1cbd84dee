package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/tourtree/partition"
	"github.com/katalvlaran/tourtree/render"
	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
	"github.com/katalvlaran/tourtree/tsp"
)

// Report summarises a finished run.
type Report struct {
	RunID   string
	Nodes   int
	TSPTime time.Duration
	Length  float64
	Stats   tsp.Stats
}

// Run executes one benchmark run. Benchmark output goes to out; progress goes
// to logger. Only the solve call is inside the timed region.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	rep := Report{RunID: uuid.NewString()}
	logger = logger.With("run", rep.RunID)

	logger.Info("building tree", "size", cfg.Size, "procs", cfg.Procs)
	arena, err := partition.Build(cfg.Size, 0, 0, cfg.Procs,
		cfg.MinX, cfg.MaxX, cfg.MinY, cfg.MaxY, partition.WithSeed(cfg.Seed))
	if err != nil {
		return rep, fmt.Errorf("bench: build: %w", err)
	}
	root := arena.Root()
	rep.Nodes = arena.Len()
	logger.Info("past build", "nodes", rep.Nodes)

	if cfg.PrintTree {
		if err = tree.Print(out, root); err != nil {
			return rep, fmt.Errorf("bench: print tree: %w", err)
		}
	}
	if cfg.PrintRing && cfg.JGraph {
		if _, err = io.WriteString(out, "newgraph\nnewcurve pts\n"); err != nil {
			return rep, fmt.Errorf("bench: print ring: %w", err)
		}
	}

	start := time.Now()
	anchor, st, err := tsp.SolveContext(ctx, root, cfg.MinSize, cfg.Procs, cfg.solveOptions())
	rep.TSPTime = time.Since(start)
	rep.Stats = st
	if err != nil {
		return rep, fmt.Errorf("bench: tsp: %w", err)
	}
	logger.Debug("tour built",
		"conquered", st.Conquered, "merged", st.Merged,
		"two_opt_moves", st.TwoOptMoves, "timed_out", st.TimedOut)
	if st.TimedOut {
		logger.Warn("2-opt stopped at time limit", "limit", cfg.TimeLimit)
	}

	var ringOpts []ring.Option
	if cfg.GuardRing {
		ringOpts = append(ringOpts, ring.WithLimit(arena.Len()))
	}

	if cfg.PrintRing {
		if err = ring.Print(out, anchor, ringOpts...); err != nil {
			return rep, fmt.Errorf("bench: print ring: %w", err)
		}
		if cfg.JGraph {
			if _, err = io.WriteString(out, "linetype solid\n"); err != nil {
				return rep, fmt.Errorf("bench: print ring: %w", err)
			}
		}
	}

	if rep.Length, err = tsp.Length(anchor, ringOpts...); err != nil {
		return rep, fmt.Errorf("bench: tour length: %w", err)
	}
	if cfg.Verify {
		if err = tsp.ValidateTour(root, anchor); err != nil {
			return rep, fmt.Errorf("bench: verify: %w", err)
		}
		logger.Info("tour verified", "nodes", rep.Nodes, "length", rep.Length)
	}

	if err = export(ctx, cfg, arena, anchor, ringOpts, logger); err != nil {
		return rep, err
	}

	if cfg.MetricsFile != "" {
		m := newMetrics(rep.RunID)
		m.observe(rep)
		if err = m.writeFile(cfg.MetricsFile); err != nil {
			return rep, err
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}

	if _, err = fmt.Fprintf(out, "Time for TSP = %f\n", rep.TSPTime.Seconds()); err != nil {
		return rep, fmt.Errorf("bench: report: %w", err)
	}
	return rep, nil
}

// export writes the requested DOT and SVG files. Nodes are coloured by the
// partition that placed them.
func export(ctx context.Context, cfg Config, arena *partition.Arena, anchor *tree.Node, ringOpts []ring.Option, logger *log.Logger) error {
	if cfg.TreeDOTFile == "" && cfg.DOTFile == "" && cfg.SVGFile == "" {
		return nil
	}

	owners := arena.Owners()
	opts := render.Options{Group: func(n *tree.Node) int { return owners[n] }}

	if cfg.TreeDOTFile != "" {
		if err := writeFile(cfg.TreeDOTFile, []byte(render.TreeDOT(arena.Root(), opts))); err != nil {
			return err
		}
		logger.Debug("tree DOT written", "path", cfg.TreeDOTFile)
	}
	if cfg.DOTFile == "" && cfg.SVGFile == "" {
		return nil
	}

	dot, err := render.RingDOT(anchor, opts, ringOpts...)
	if err != nil {
		return fmt.Errorf("bench: export: %w", err)
	}
	if cfg.DOTFile != "" {
		if err = writeFile(cfg.DOTFile, []byte(dot)); err != nil {
			return err
		}
		logger.Debug("ring DOT written", "path", cfg.DOTFile)
	}
	if cfg.SVGFile != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("bench: export: %w", err)
		}
		if err = writeFile(cfg.SVGFile, svg); err != nil {
			return err
		}
		logger.Debug("ring SVG written", "path", cfg.SVGFile)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	return nil
}
