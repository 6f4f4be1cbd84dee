// Package ring walks and maintains the tour ring: the circular doubly-linked
// list threaded through tree.Node values via Next and Prev.
//
// The ring walk uses the anchor's identity as its stop condition, never a nil
// check:
//
//	visit(anchor)
//	for cur := anchor.Next; cur != anchor; cur = cur.Next {
//		visit(cur)
//	}
//
// A self-loop (anchor.Next == anchor) therefore visits the anchor exactly once.
// Two distinct nodes may share coordinates; only pointer identity counts.
//
// Precondition: the Next chain starting at the anchor must come back to the
// anchor. The tour builder (package tsp) establishes this; the walk does not
// verify it by default. WithLimit turns a malformed ring into ErrRingUnclosed
// instead of a non-terminating walk, and a nil Next on the way is reported as
// ErrBrokenLink.
package ring
