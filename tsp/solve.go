// Package tsp - dispatcher for tour construction.
//
// This file provides the entry points that turn a partition tree into a ring:
//
//   - Solve: the plain call contract, (root, minSize, nproc) → anchor.
//   - SolveContext: same, with cancellation and Stats.
//
// Design principles:
//   - Deterministic: the same tree and options always give the same ring,
//     sequential or parallel.
//   - Strict sentinels: argument problems surface as errors from types.go.
//   - In place: only Next/Prev are written; tree links and node identity are
//     preserved.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourtree/tree"
)

// Solve builds a closed tour over every node reachable from root and returns
// its anchor. Subtrees with Size ≤ minSize are conquered directly, larger
// ones are split into their two children (each with nproc/2 partitions) and
// merged through the parent, which then becomes the anchor.
//
// A nil root yields a nil anchor and no error.
//
// Errors: ErrBadMinSize, ErrBadPartitionCount, ErrUnsupportedNearest,
// ErrBadOption.
func Solve(root *tree.Node, minSize, nproc int, opts Options) (*tree.Node, error) {
	anchor, _, err := SolveContext(context.Background(), root, minSize, nproc, opts)
	return anchor, err
}

// SolveContext is Solve with cancellation and statistics. ctx is checked
// before every merge; on cancellation the ring is left partially built and
// ctx.Err() is returned.
//
// A 2-opt pass stopped by opts.TimeLimit is not an error: the ring is still a
// valid tour and Stats.TimedOut is set.
//
// Complexity: O(N log N) merges plus conquer cost (see package doc).
func SolveContext(ctx context.Context, root *tree.Node, minSize, nproc int, opts Options) (*tree.Node, Stats, error) {
	if err := validateArgs(minSize, nproc, opts); err != nil {
		return nil, Stats{}, err
	}
	if root == nil {
		return nil, Stats{}, nil
	}

	s := &solver{minSize: minSize, opts: opts}
	anchor, err := s.solve(ctx, root, nproc)
	if err != nil {
		return nil, s.stats(), err
	}

	st := s.stats()
	if opts.TwoOpt {
		var moves int
		anchor, moves, err = twoOpt(anchor, opts)
		st.TwoOptMoves = moves
		switch {
		case errors.Is(err, ErrTimeLimit):
			st.TimedOut = true
		case err != nil:
			return nil, st, fmt.Errorf("tsp: two-opt: %w", err)
		}
	}

	return anchor, st, nil
}

// solver carries the per-solve configuration through the recursion.
// Counters are atomic because Parallel runs siblings concurrently.
type solver struct {
	minSize   int
	opts      Options
	conquered atomic.Int64
	merged    atomic.Int64
}

func (s *solver) stats() Stats {
	return Stats{
		Conquered: int(s.conquered.Load()),
		Merged:    int(s.merged.Load()),
	}
}

// solve returns the anchor of a ring over the subtree at t (t != nil).
func (s *solver) solve(ctx context.Context, t *tree.Node, nproc int) (*tree.Node, error) {
	// Small partitions, and nodes missing a child, are conquered whole.
	if t.Size <= s.minSize || t.Left == nil || t.Right == nil {
		s.conquered.Add(1)
		return conquer(t, s.opts.Nearest), nil
	}

	var (
		left, right *tree.Node
		err         error
	)
	if s.opts.Parallel && nproc > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var lerr error
			left, lerr = s.solve(gctx, t.Left, nproc/2)
			return lerr
		})
		g.Go(func() error {
			var rerr error
			right, rerr = s.solve(gctx, t.Right, nproc/2)
			return rerr
		})
		err = g.Wait()
	} else {
		left, err = s.solve(ctx, t.Left, nproc/2)
		if err == nil {
			right, err = s.solve(ctx, t.Right, nproc/2)
		}
	}
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.merged.Add(1)

	return merge(left, right, t), nil
}
