package tsp

import "fmt"

// validateArgs checks the solve arguments and options.
//
// Complexity: O(1).
func validateArgs(minSize, nproc int, opts Options) error {
	if minSize < 1 {
		return fmt.Errorf("tsp: minSize=%d: %w", minSize, ErrBadMinSize)
	}
	if nproc < 1 {
		return fmt.Errorf("tsp: nproc=%d: %w", nproc, ErrBadPartitionCount)
	}
	return validateOptions(opts)
}

// validateOptions checks Options without reference to any tree.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Nearest {
	case NearestLinear, NearestRTree:
		// ok
	default:
		return fmt.Errorf("tsp: nearest=%d: %w", int(opts.Nearest), ErrUnsupportedNearest)
	}
	// A negative epsilon would accept worsening moves.
	if opts.Eps < 0 {
		return fmt.Errorf("tsp: eps=%g: %w", opts.Eps, ErrBadOption)
	}
	if opts.TwoOptMaxIters < 0 {
		return fmt.Errorf("tsp: two-opt iters=%d: %w", opts.TwoOptMaxIters, ErrBadOption)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("tsp: time limit=%s: %w", opts.TimeLimit, ErrBadOption)
	}
	return nil
}
