package ring

import (
	"fmt"

	"github.com/katalvlaran/tourtree/tree"
)

// Validate checks the ring invariant from anchor: every member has non-nil
// links, p.Next.Prev == p, and following Next returns to anchor without
// revisiting any other node. A nil anchor is valid (empty ring).
//
// Unlike Walk, Validate remembers visited nodes, so it terminates on any
// input.
//
// Complexity: O(n) time, O(n) space.
func Validate(anchor *tree.Node) error {
	if anchor == nil {
		return nil
	}

	var (
		seen = make(map[*tree.Node]struct{})
		cur  = anchor
		ok   bool
	)
	for {
		if cur.Next == nil || cur.Prev == nil {
			return fmt.Errorf("ring: node %d: %w", len(seen), ErrBrokenLink)
		}
		if cur.Next.Prev != cur {
			return fmt.Errorf("ring: node %d: %w", len(seen), ErrBrokenInverse)
		}
		seen[cur] = struct{}{}

		cur = cur.Next
		if cur == anchor {
			return nil
		}
		if _, ok = seen[cur]; ok {
			return fmt.Errorf("ring: cycle after %d nodes skips anchor: %w", len(seen), ErrRingUnclosed)
		}
	}
}

// Reverse flips the direction of the ring containing anchor in place:
// afterwards Next walks the old Prev order. Node identity and tree links are
// untouched. A nil anchor is a no-op.
//
// The ring must be valid (see Validate).
//
// Complexity: O(n) time, O(1) space.
func Reverse(anchor *tree.Node) {
	if anchor == nil {
		return
	}

	var (
		cur = anchor
		nxt *tree.Node
	)
	for {
		nxt = cur.Next
		cur.Next, cur.Prev = cur.Prev, cur.Next
		cur = nxt
		if cur == anchor {
			return
		}
	}
}

// Link makes a valid ring out of nodes, in slice order. The first node
// becomes the anchor and is returned. An empty slice yields nil.
//
// Complexity: O(n) time.
func Link(nodes []*tree.Node) *tree.Node {
	if len(nodes) == 0 {
		return nil
	}

	var (
		n = len(nodes)
		i int
	)
	for i = 0; i < n; i++ {
		nodes[i].Next = nodes[(i+1)%n]
		nodes[(i+1)%n].Prev = nodes[i]
	}

	return nodes[0]
}
