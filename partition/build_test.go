package partition_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourtree/partition"
	"github.com/katalvlaran/tourtree/tree"
)

func TestCountNodes(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {2, 3}, {3, 3}, {4, 7}, {7, 7}, {8, 15},
		{150, 255}, {150000, 262143},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, partition.CountNodes(tc.n), "n=%d", tc.n)
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 1024: 10}
	for num, want := range cases {
		assert.Equal(t, want, partition.Log2Ceil(num), "num=%d", num)
	}
}

func TestBuild_EmptyTree(t *testing.T) {
	a, err := partition.Build(0, 0, 0, 4, 0, 1, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, a.Root())
	assert.Zero(t, a.Len())

	root, err := partition.BuildTree(0, 0, 0, 4, 0, 1, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestBuild_ShapeAndSizes(t *testing.T) {
	const n = 1000
	a, err := partition.Build(n, 0, 0, 4, 0, 1, 0, 1, partition.WithSeed(7))
	require.NoError(t, err)

	root := a.Root()
	require.NotNil(t, root)
	require.NoError(t, tree.Validate(root))
	assert.Equal(t, partition.CountNodes(n), a.Len())
	assert.Equal(t, a.Len(), tree.Count(root))

	// Size halves on every level; every node's children carry Size/2.
	require.NoError(t, tree.Walk(root, func(nd *tree.Node) error {
		for _, c := range []*tree.Node{nd.Left, nd.Right} {
			if nd.Size/2 == 0 {
				assert.Nil(t, c)
				continue
			}
			require.NotNil(t, c)
			assert.Equal(t, nd.Size/2, c.Size)
		}
		assert.Nil(t, nd.Next, "ring links untouched by construction")
		assert.Nil(t, nd.Prev)
		return nil
	}))
	assert.Equal(t, n, root.Size)
}

func TestBuild_SlabOrderIsPreOrder(t *testing.T) {
	a, err := partition.Build(100, 1, 0, 8, 0, 1, 0, 1)
	require.NoError(t, err)

	pre := tree.Nodes(a.Root())
	require.Len(t, pre, a.Len())
	for i, nd := range pre {
		assert.Same(t, a.Node(i), nd, "slab index %d", i)
	}
}

// checkBounds asserts the partitioning invariant: every node lies inside its
// rectangle and its children lie on the correct side of its split coordinate.
func checkBounds(t *testing.T, nd *tree.Node, dir int, minX, maxX, minY, maxY float64) {
	t.Helper()
	if nd == nil {
		return
	}
	require.True(t, nd.X >= minX && nd.X <= maxX, "x=%f not in [%f,%f]", nd.X, minX, maxX)
	require.True(t, nd.Y >= minY && nd.Y <= maxY, "y=%f not in [%f,%f]", nd.Y, minY, maxY)
	if dir != 0 {
		checkBounds(t, nd.Left, 0, minX, nd.X, minY, maxY)
		checkBounds(t, nd.Right, 0, nd.X, maxX, minY, maxY)
	} else {
		checkBounds(t, nd.Left, 1, minX, maxX, minY, nd.Y)
		checkBounds(t, nd.Right, 1, minX, maxX, nd.Y, maxY)
	}
}

func TestBuild_PointsRespectPartitions(t *testing.T) {
	for _, dir := range []int{0, 1} {
		root, err := partition.BuildTree(2000, dir, 0, 4, -3, 5, 10, 12, partition.WithSeed(42))
		require.NoError(t, err)
		checkBounds(t, root, dir, -3, 5, 10, 12)
	}
}

func TestBuild_DegenerateRectangle(t *testing.T) {
	root, err := partition.BuildTree(31, 0, 0, 1, 2, 2, 3, 3)
	require.NoError(t, err)
	require.NoError(t, tree.Walk(root, func(nd *tree.Node) error {
		assert.Equal(t, 2.0, nd.X)
		assert.Equal(t, 3.0, nd.Y)
		return nil
	}))
}

func TestBuild_Deterministic(t *testing.T) {
	coords := func(opts ...partition.Option) [][2]float64 {
		root, err := partition.BuildTree(500, 0, 0, 4, 0, 1, 0, 1, opts...)
		require.NoError(t, err)
		var out [][2]float64
		for _, nd := range tree.Nodes(root) {
			out = append(out, [2]float64{nd.X, nd.Y})
		}
		return out
	}

	assert.Equal(t, coords(), coords(), "default seed")
	assert.Equal(t, coords(), coords(partition.WithSeed(0)), "seed 0 is the default seed")
	assert.Equal(t, coords(partition.WithSeed(9)), coords(partition.WithRand(rand.New(rand.NewSource(9)))))
	assert.NotEqual(t, coords(partition.WithSeed(9)), coords(partition.WithSeed(10)))
}

func TestBuild_Owners(t *testing.T) {
	a, err := partition.Build(64, 0, 0, 4, 0, 1, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Owner(0), "root sits on partition lo")
	root := a.Root()
	owners := a.Owners()
	require.Len(t, owners, a.Len())
	assert.Equal(t, 2, owners[root.Left], "left half starts at lo+nproc/2")
	assert.Equal(t, 0, owners[root.Right])
	assert.Equal(t, 3, owners[root.Left.Left])
	assert.Equal(t, 2, owners[root.Left.Right])
	assert.Equal(t, 1, owners[root.Right.Left])
	for _, p := range owners {
		assert.True(t, p >= 0 && p < 4)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := partition.Build(-1, 0, 0, 4, 0, 1, 0, 1)
	require.ErrorIs(t, err, partition.ErrNegativeSize)

	_, err = partition.Build(10, 0, 0, 0, 0, 1, 0, 1)
	require.ErrorIs(t, err, partition.ErrBadPartitionCount)

	_, err = partition.Build(10, 0, -1, 4, 0, 1, 0, 1)
	require.ErrorIs(t, err, partition.ErrBadPartitionCount)

	_, err = partition.Build(10, 0, 0, 4, 1, 0, 0, 1)
	require.ErrorIs(t, err, partition.ErrBadBounds)

	_, err = partition.BuildTree(10, 0, 0, 4, 0, math.NaN(), 0, 1)
	require.ErrorIs(t, err, partition.ErrBadBounds)

	_, err = partition.Build(10, 0, 0, 4, 0, 1, math.Inf(-1), 1)
	require.ErrorIs(t, err, partition.ErrBadBounds)
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { partition.WithRand(nil) })
}

func BenchmarkBuild_150k(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Build(150000, 0, 0, 4, 0, 1, 0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
