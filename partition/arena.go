// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// arena.go - single-slab node storage with stable identities.

package partition

import "github.com/katalvlaran/tourtree/tree"

// Arena owns every node of one partition tree. Nodes are allocated from a
// slab sized once up front, so their addresses never change.
//
// Slab order equals construction order, which is the tree's pre-order.
type Arena struct {
	nodes []tree.Node
	owner []int // owner[i] is the partition index (lo) that placed nodes[i]
	used  int
	root  *tree.Node
}

// CountNodes returns the exact number of nodes Build creates for n points:
// count(0) = 0, count(n) = 1 + 2·count(n/2).
//
// Complexity: O(log n).
func CountNodes(n int) int {
	var (
		total int
		width = 1
	)
	for m := n; m > 0; m /= 2 {
		total += width
		width *= 2
	}
	return total
}

func newArena(capacity int) *Arena {
	return &Arena{
		nodes: make([]tree.Node, capacity),
		owner: make([]int, capacity),
	}
}

// alloc hands out the next slab slot. The slab is sized by CountNodes, so
// running out means the construction recursion and CountNodes disagree.
func (a *Arena) alloc(lo int) *tree.Node {
	if a.used == len(a.nodes) {
		panic("partition: arena exhausted")
	}
	n := &a.nodes[a.used]
	a.owner[a.used] = lo
	a.used++
	return n
}

// Root returns the tree root (nil for an empty tree).
func (a *Arena) Root() *tree.Node { return a.root }

// Len returns the number of allocated nodes.
func (a *Arena) Len() int { return a.used }

// Node returns the i-th allocated node (pre-order index).
func (a *Arena) Node(i int) *tree.Node { return &a.nodes[i] }

// Owner returns the partition index that placed the i-th node.
func (a *Arena) Owner(i int) int { return a.owner[i] }

// Owners returns a node → partition index table for all allocated nodes.
//
// Complexity: O(N) time and space.
func (a *Arena) Owners() map[*tree.Node]int {
	out := make(map[*tree.Node]int, a.used)
	for i := 0; i < a.used; i++ {
		out[&a.nodes[i]] = a.owner[i]
	}
	return out
}
