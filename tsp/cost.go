// Package tsp - distance and tour-length utilities.
//
// Design:
//   - Points are read straight from tree.Node coordinates and handled as
//     gonum r2 vectors; no distance matrix is ever materialised.
//   - Tour length is rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// vec returns the node's position as an r2 vector.
func vec(n *tree.Node) r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// distance is the Euclidean distance between two nodes.
//
// Complexity: O(1).
func distance(a, b *tree.Node) float64 {
	return r2.Norm(r2.Sub(vec(a), vec(b)))
}

// Length returns the closed length of the ring starting at anchor:
// the sum of |p, p.Next| over every member. A nil anchor has length 0,
// a self-loop has length 0.
//
// Ring options (e.g. ring.WithLimit) bound the walk.
//
// Complexity: O(n).
func Length(anchor *tree.Node, opts ...ring.Option) (float64, error) {
	var sum float64
	err := ring.Walk(anchor, func(n *tree.Node) error {
		if n.Next == nil {
			return ring.ErrBrokenLink
		}
		sum += distance(n, n.Next)
		return nil
	}, opts...)
	if err != nil {
		return 0, err
	}

	return round1e9(sum), nil
}

// round1e9 rounds x to 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
