package bench

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tourtree/tsp"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config is one benchmark run. Field tags name the keys of the TOML config
// file.
type Config struct {
	// Size is the number of points requested from the tree builder.
	Size int `toml:"size"`
	// Procs is the partition count handed to the builder and the solver.
	Procs int `toml:"procs"`
	// MinSize is the conquer threshold of the solver.
	MinSize int `toml:"min_size"`
	// Seed drives point generation; 0 selects the builder default.
	Seed int64 `toml:"seed"`

	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`

	PrintTree bool `toml:"print_tree"`
	PrintRing bool `toml:"print_ring"`
	// JGraph wraps the ring dump in jgraph curve commands.
	JGraph bool `toml:"jgraph"`
	// GuardRing bounds ring walks by the arena size.
	GuardRing bool `toml:"guard_ring"`
	// Verify checks the finished tour against the tree.
	Verify bool `toml:"verify"`

	Nearest     string        `toml:"nearest"`
	Parallel    bool          `toml:"parallel"`
	TwoOpt      bool          `toml:"two_opt"`
	TwoOptIters int           `toml:"two_opt_iters"`
	TimeLimit   time.Duration `toml:"time_limit"`

	// Output files; empty disables the export.
	TreeDOTFile string `toml:"tree_dot_file"`
	DOTFile     string `toml:"dot_file"`
	SVGFile     string `toml:"svg_file"`
	MetricsFile string `toml:"metrics_file"`
}

// DefaultConfig returns the classic benchmark setup: 150000 points, 4
// partitions, conquer at 150, unit square, no printing.
func DefaultConfig() Config {
	return Config{
		Size:      150000,
		Procs:     4,
		MinSize:   150,
		MinX:      0,
		MaxX:      1,
		MinY:      0,
		MaxY:      1,
		GuardRing: true,
		Nearest:   tsp.NearestLinear.String(),
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%w: size=%d", ErrInvalidConfig, c.Size)
	case c.Procs < 1:
		return fmt.Errorf("%w: procs=%d", ErrInvalidConfig, c.Procs)
	case c.MinSize < 1:
		return fmt.Errorf("%w: min_size=%d", ErrInvalidConfig, c.MinSize)
	case !finite(c.MinX, c.MaxX, c.MinY, c.MaxY) || c.MinX > c.MaxX || c.MinY > c.MaxY:
		return fmt.Errorf("%w: bounds [%g,%g]x[%g,%g]", ErrInvalidConfig, c.MinX, c.MaxX, c.MinY, c.MaxY)
	case c.TwoOptIters < 0:
		return fmt.Errorf("%w: two_opt_iters=%d", ErrInvalidConfig, c.TwoOptIters)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time_limit=%s", ErrInvalidConfig, c.TimeLimit)
	}
	if _, err := tsp.ParseNearest(c.Nearest); err != nil {
		return fmt.Errorf("%w: nearest=%q", ErrInvalidConfig, c.Nearest)
	}
	return nil
}

// solveOptions maps the config onto solver options. c must be valid.
func (c Config) solveOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Nearest, _ = tsp.ParseNearest(c.Nearest)
	opts.Parallel = c.Parallel
	opts.TwoOpt = c.TwoOpt
	opts.TwoOptMaxIters = c.TwoOptIters
	opts.TimeLimit = c.TimeLimit
	return opts
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
