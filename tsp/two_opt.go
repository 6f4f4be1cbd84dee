// Package tsp - 2-opt local search over a tour ring.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour.
//   - Classic symmetric move: reverse segment [i..k] of the ring order.
//     Δ = |a,c| + |b,d| − |a,b| − |c,d|, with a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//   - A move is accepted when Δ < −Eps.
//
// Design:
//   - The ring is snapshotted into a closed slice T (len n+1, T[0]==T[n]==anchor),
//     improved in the slice, and relinked once at the end; the anchor keeps
//     its place at T[0].
//   - Scanning continues after an accepted move; a sweep with no accepted move
//     ends the search (local optimum).
//   - Soft time budget via periodic deadline checks; on expiry the current
//     (valid) order is relinked and ErrTimeLimit is returned.
//
// Complexity:
//   - One sweep: O(n²) candidate checks; each accepted move costs O(k−i).
//   - Overall: O(sweeps·n²) time, O(n) extra space.
package tsp

import (
	"time"

	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
)

// deadlineMask throttles clock reads to one per 2048 candidate checks.
const deadlineMask = 2047

// TwoOpt improves the ring at anchor in place and returns the anchor with the
// number of accepted moves. Rings shorter than 4 nodes are returned as is.
//
// Errors: ErrBadOption for invalid knobs, ring errors for a malformed ring,
// ErrTimeLimit when opts.TimeLimit expires (the ring is still valid).
func TwoOpt(anchor *tree.Node, opts Options) (*tree.Node, int, error) {
	if err := validateOptions(opts); err != nil {
		return nil, 0, err
	}
	if err := ring.Validate(anchor); err != nil {
		return nil, 0, err
	}
	return twoOpt(anchor, opts)
}

// twoOpt is TwoOpt without input validation; the ring must be valid.
func twoOpt(anchor *tree.Node, opts Options) (*tree.Node, int, error) {
	order, err := ring.Order(anchor)
	if err != nil {
		return nil, 0, err
	}
	n := len(order)
	if n < 4 {
		return anchor, 0, nil
	}

	// Closed working tour: cur[n] repeats the anchor.
	cur := make([]*tree.Node, n+1)
	copy(cur, order)
	cur[n] = anchor

	eps := opts.Eps
	maxIters := opts.TwoOptMaxIters // 0 ⇒ unlimited

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	expired := func() bool {
		step++
		if !useDeadline || (step&deadlineMask) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	accepted := 0
	for {
		improved := false

		var (
			a, b, c, d *tree.Node
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				if expired() {
					ring.Link(cur[:n])
					return anchor, accepted, ErrTimeLimit
				}

				a, b = cur[i-1], cur[i]
				c, d = cur[k], cur[k+1]

				delta = (distance(a, c) + distance(b, d)) - (distance(a, b) + distance(c, d))
				if delta >= -eps {
					continue
				}

				reverseSegment(cur, i, k)
				accepted++
				improved = true

				if maxIters > 0 && accepted >= maxIters {
					ring.Link(cur[:n])
					return anchor, accepted, nil
				}
			}
		}

		if !improved {
			break
		}
	}

	ring.Link(cur[:n])
	return anchor, accepted, nil
}

// reverseSegment reverses cur[i..k] in place (1 ≤ i < k ≤ n−1), keeping the
// anchor at both ends of the closed slice.
//
// Complexity: O(k−i) time, O(1) space.
func reverseSegment(cur []*tree.Node, i, k int) {
	for i < k {
		cur[i], cur[k] = cur[k], cur[i]
		i++
		k--
	}
}
