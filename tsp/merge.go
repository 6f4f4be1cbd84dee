package tsp

import (
	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
)

// joinEdge is the ring edge (p → n) that a new node t would split, with the
// lengths of the two edges t would gain.
type joinEdge struct {
	p, n       *tree.Node
	tToP, tToN float64
}

// bestEdge locates where t would enter the ring at anchor: next to the
// closest member, on the cheaper side (same rule as insertNear).
//
// Complexity: O(ring size).
func bestEdge(anchor, t *tree.Node) joinEdge {
	var (
		near       = nearestOnRing(anchor, t)
		nearDist   = distance(t, near)
		next       = near.Next
		prev       = near.Prev
		nearToNext = distance(near, next)
		nearToPrev = distance(near, prev)
		tToNext    = distance(t, next)
		tToPrev    = distance(t, prev)
	)
	if (tToPrev - nearToPrev) < (tToNext - nearToNext) {
		return joinEdge{p: prev, n: near, tToP: tToPrev, tToN: nearDist}
	}
	return joinEdge{p: near, n: next, tToP: nearDist, tToN: tToNext}
}

// merge joins the rings at a and b through t (which belongs to neither) and
// returns t as the anchor of the combined ring.
//
// With e1 = (p1 → n1) on a and e2 = (p2 → n2) on b, both edges are removed
// and one of four completions is chosen by the smallest added length:
//
//	1: t–p1, t–p2, n1–n2   (b is reversed)
//	2: t–p1, t–n2, n1–p2
//	3: t–n1, t–p2, p1–n2
//	4: t–n1, t–n2, p1–p2   (a is reversed)
//
// Ties keep the lower-numbered completion.
//
// Complexity: O(|a| + |b|).
func merge(a, b, t *tree.Node) *tree.Node {
	var (
		e1 = bestEdge(a, t)
		e2 = bestEdge(b, t)

		p1, n1 = e1.p, e1.n
		p2, n2 = e2.p, e2.n

		n1ToN2 = distance(n1, n2)
		n1ToP2 = distance(n1, p2)
		p1ToN2 = distance(p1, n2)
		p1ToP2 = distance(p1, p2)

		choice = 1
		best   = e1.tToP + e2.tToP + n1ToN2
		test   float64
	)
	test = e1.tToP + e2.tToN + n1ToP2
	if test < best {
		choice, best = 2, test
	}
	test = e1.tToN + e2.tToP + p1ToN2
	if test < best {
		choice, best = 3, test
	}
	test = e1.tToN + e2.tToN + p1ToP2
	if test < best {
		choice = 4
	}

	switch choice {
	case 1:
		// p1 → t → p2 ⇢ (b backwards) ⇢ n2 → n1
		ring.Reverse(n2)
		p1.Next, t.Prev = t, p1
		t.Next, p2.Prev = p2, t
		n2.Next, n1.Prev = n1, n2
	case 2:
		// p1 → t → n2 ⇢ p2 → n1
		p1.Next, t.Prev = t, p1
		t.Next, n2.Prev = n2, t
		p2.Next, n1.Prev = n1, p2
	case 3:
		// p2 → t → n1 ⇢ p1 → n2
		p2.Next, t.Prev = t, p2
		t.Next, n1.Prev = n1, t
		p1.Next, n2.Prev = n2, p1
	case 4:
		// n1 → t → n2 ⇢ p2 → p1 ⇢ (a backwards) ⇢ n1
		ring.Reverse(n1)
		n1.Next, t.Prev = t, n1
		t.Next, n2.Prev = n2, t
		p2.Next, p1.Prev = p1, p2
	}

	return t
}
