package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
	"github.com/katalvlaran/tourtree/tsp"
)

// crossedSquare links the unit square corners as a bow tie.
func crossedSquare() (anchor *tree.Node, nodes []*tree.Node) {
	nodes = []*tree.Node{pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1)}
	return ring.Link(nodes), nodes
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	anchor, nodes := crossedSquare()

	before, err := tsp.Length(anchor)
	require.NoError(t, err)
	require.InDelta(t, 2+2*1.414213562, before, 1e-6)

	got, moves, err := tsp.TwoOpt(anchor, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Same(t, anchor, got)
	assert.Equal(t, 1, moves)
	require.NoError(t, ring.Validate(got))

	after, err := tsp.Length(got)
	require.NoError(t, err)
	assert.Equal(t, 4.0, after)

	order, err := ring.Order(got)
	require.NoError(t, err)
	assert.Equal(t, []*tree.Node{nodes[0], nodes[2], nodes[1], nodes[3]}, order)
}

func TestTwoOpt_SmallRingsUntouched(t *testing.T) {
	nodes := []*tree.Node{pt(0, 0), pt(3, 0), pt(0, 4)}
	anchor := ring.Link(nodes)

	got, moves, err := tsp.TwoOpt(anchor, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Same(t, anchor, got)
	assert.Zero(t, moves)

	order, err := ring.Order(got)
	require.NoError(t, err)
	assert.Equal(t, nodes, order)
}

func TestTwoOpt_NeverLengthens(t *testing.T) {
	base := tsp.DefaultOptions()
	opt := tsp.DefaultOptions()
	opt.TwoOpt = true

	root, plain := solved(t, 1500, 150, base)
	_, improved := solved(t, 1500, 150, opt)

	want, err := tsp.Length(plain)
	require.NoError(t, err)
	got, err := tsp.Length(improved)
	require.NoError(t, err)

	assert.LessOrEqual(t, got, want)
	assert.Equal(t, tree.Count(root), len(coords(t, improved)))
}

func TestTwoOpt_MaxIters(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.TwoOpt = true
	opts.TwoOptMaxIters = 1

	root := unitTree(t, 1500)
	anchor, st, err := tsp.SolveContext(context.Background(), root, 150, procsDet, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, st.TwoOptMoves, 1)
	require.NoError(t, tsp.ValidateTour(root, anchor))
}

func TestTwoOpt_TimeLimitKeepsValidTour(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.TwoOpt = true
	opts.TimeLimit = time.Nanosecond

	root := unitTree(t, 1000)
	anchor, st, err := tsp.SolveContext(context.Background(), root, 150, procsDet, opts)
	require.NoError(t, err)
	assert.True(t, st.TimedOut)
	require.NoError(t, tsp.ValidateTour(root, anchor))
}

func TestTwoOpt_Errors(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Eps = -1
	anchor, _ := crossedSquare()
	_, _, err := tsp.TwoOpt(anchor, opts)
	assert.ErrorIs(t, err, tsp.ErrBadOption)

	broken := pt(0, 0)
	broken.Next = pt(1, 1)
	_, _, err = tsp.TwoOpt(broken, tsp.DefaultOptions())
	assert.ErrorIs(t, err, ring.ErrBrokenLink)
}
