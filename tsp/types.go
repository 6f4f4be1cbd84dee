package tsp

import (
	"errors"
	"time"
)

var (
	// ErrBadMinSize is returned when the conquer threshold is < 1.
	ErrBadMinSize = errors.New("tsp: minimum partition size must be positive")

	// ErrBadPartitionCount is returned when nproc < 1.
	ErrBadPartitionCount = errors.New("tsp: partition count must be positive")

	// ErrUnsupportedNearest is returned for an unknown Options.Nearest value.
	ErrUnsupportedNearest = errors.New("tsp: unsupported nearest-member strategy")

	// ErrBadOption is returned for negative Eps, TwoOptMaxIters or TimeLimit.
	ErrBadOption = errors.New("tsp: invalid option value")

	// ErrTimeLimit is reported when the 2-opt time budget runs out. The ring
	// is still a valid tour when this is returned.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrTourIncomplete is returned by ValidateTour when the ring and the tree
	// do not hold exactly the same nodes.
	ErrTourIncomplete = errors.New("tsp: tour does not cover the tree")
)

// Nearest selects how conquer finds the ring member closest to a new point.
type Nearest int

const (
	// NearestLinear scans the ring in Next order; the first minimum wins.
	NearestLinear Nearest = iota
	// NearestRTree queries an R-tree holding the current ring members.
	NearestRTree
)

// String returns the flag spelling of the strategy.
func (n Nearest) String() string {
	switch n {
	case NearestLinear:
		return "linear"
	case NearestRTree:
		return "rtree"
	default:
		return "unknown"
	}
}

// ParseNearest maps "linear" / "rtree" to a strategy.
func ParseNearest(s string) (Nearest, error) {
	switch s {
	case "linear", "":
		return NearestLinear, nil
	case "rtree":
		return NearestRTree, nil
	default:
		return 0, ErrUnsupportedNearest
	}
}

// DefaultEps is the strict improvement threshold of the 2-opt pass.
const DefaultEps = 1e-12

// Options configures tour construction.
type Options struct {
	// Nearest is the conquer lookup strategy.
	Nearest Nearest

	// Parallel solves sibling subtrees concurrently while nproc > 1.
	Parallel bool

	// TwoOpt enables the 2-opt post-pass over the finished ring.
	TwoOpt bool

	// TwoOptMaxIters caps accepted 2-opt moves; 0 means unlimited.
	TwoOptMaxIters int

	// TimeLimit bounds the 2-opt pass; 0 means unlimited.
	TimeLimit time.Duration

	// Eps is the acceptance tolerance: a move is taken when Δ < −Eps.
	Eps float64
}

// DefaultOptions returns the plain partition heuristic: linear lookup,
// sequential, no post-pass.
func DefaultOptions() Options {
	return Options{
		Nearest:        NearestLinear,
		Parallel:       false,
		TwoOpt:         false,
		TwoOptMaxIters: 0,
		TimeLimit:      0,
		Eps:            DefaultEps,
	}
}

// Stats reports what a solve did.
type Stats struct {
	// Conquered is the number of partitions grown by insertion.
	Conquered int
	// Merged is the number of pairwise tour merges.
	Merged int
	// TwoOptMoves is the number of accepted 2-opt moves.
	TwoOptMoves int
	// TimedOut is set when the 2-opt pass stopped on TimeLimit.
	TimedOut bool
}
