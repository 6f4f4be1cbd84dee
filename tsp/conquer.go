package tsp

import "github.com/katalvlaran/tourtree/tree"

// conquer grows a ring over every node of the subtree rooted at t by
// nearest-member insertion and returns its anchor (the first node of the
// subtree's pre-order). Tree links are only read.
//
// Complexity: O(m²) with the linear index, m = subtree size.
func conquer(t *tree.Node, kind Nearest) *tree.Node {
	if t == nil {
		return nil
	}
	members := tree.Nodes(t)

	cycle := members[0]
	cycle.Next, cycle.Prev = cycle, cycle

	ix := newIndex(kind, cycle)
	var p *tree.Node
	for _, p = range members[1:] {
		insertNear(ix.nearest(p), p)
		ix.add(p)
	}

	return cycle
}

// insertNear links t into the ring next to its nearest member near, on the
// side that adds the smaller detour:
//
//	(|t,prev| − |near,prev|) < (|t,next| − |near,next|) ⇒ prev ↔ t ↔ near
//	otherwise                                           ⇒ near ↔ t ↔ next
//
// Complexity: O(1).
func insertNear(near, t *tree.Node) {
	var (
		next       = near.Next
		prev       = near.Prev
		nearToNext = distance(near, next)
		nearToPrev = distance(near, prev)
		tToNext    = distance(t, next)
		tToPrev    = distance(t, prev)
	)
	if (tToPrev - nearToPrev) < (tToNext - nearToNext) {
		prev.Next = t
		t.Next = near
		t.Prev = prev
		near.Prev = t
		return
	}
	next.Prev = t
	t.Next = next
	near.Next = t
	t.Prev = near
}
