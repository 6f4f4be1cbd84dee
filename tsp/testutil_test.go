// Package tsp_test holds helpers shared by the tsp tests.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourtree/partition"
	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
	"github.com/katalvlaran/tourtree/tsp"
)

const (
	// seedDet is the fixed seed for every generated tree.
	seedDet = 42

	// procsDet is the partition count used when a test does not care.
	procsDet = 4
)

// unitTree builds an n-point partition tree over the unit square.
func unitTree(t testing.TB, n int) *tree.Node {
	t.Helper()
	root, err := partition.BuildTree(n, 0, 0, procsDet, 0, 1, 0, 1, partition.WithSeed(seedDet))
	require.NoError(t, err)
	return root
}

// solved builds an n-point tree and solves it with opts.
func solved(t testing.TB, n, minSize int, opts tsp.Options) (root, anchor *tree.Node) {
	t.Helper()
	root = unitTree(t, n)
	anchor, err := tsp.Solve(root, minSize, procsDet, opts)
	require.NoError(t, err)
	return root, anchor
}

// coords returns the ring order from anchor as coordinate pairs, so rings
// over different trees can be compared.
func coords(t testing.TB, anchor *tree.Node) [][2]float64 {
	t.Helper()
	order, err := ring.Order(anchor)
	require.NoError(t, err)
	out := make([][2]float64, len(order))
	for i, n := range order {
		out[i] = [2]float64{n.X, n.Y}
	}
	return out
}

// pt allocates a detached node at (x, y).
func pt(x, y float64) *tree.Node {
	return &tree.Node{X: x, Y: y}
}
