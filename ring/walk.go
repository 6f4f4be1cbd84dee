package ring

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tourtree/tree"
)

// Walk visits every node of the ring starting at anchor, exactly once, in
// Next order. It stops when the cursor is identical to anchor again.
// A nil anchor visits nothing.
//
// Errors:
//   - ErrBrokenLink   if a nil Next is reached before returning to anchor,
//   - ErrRingUnclosed if a WithLimit bound is exceeded,
//   - any error returned by visit, wrapped.
//
// Complexity: O(n) time, O(1) space.
func Walk(anchor *tree.Node, visit func(*tree.Node) error, opts ...Option) error {
	if anchor == nil {
		return nil
	}
	o := resolve(opts)

	if err := visit(anchor); err != nil {
		return fmt.Errorf("ring: visit anchor: %w", err)
	}

	var (
		visited = 1
		cur     *tree.Node
	)
	for cur = anchor.Next; cur != anchor; cur = cur.Next {
		if cur == nil {
			return fmt.Errorf("ring: after %d nodes: %w", visited, ErrBrokenLink)
		}
		if o.limit > 0 && visited >= o.limit {
			return fmt.Errorf("ring: limit %d reached: %w", o.limit, ErrRingUnclosed)
		}
		if err := visit(cur); err != nil {
			return fmt.Errorf("ring: visit node %d: %w", visited, err)
		}
		visited++
	}

	return nil
}

// Print writes one "<x> <y>" line per ring node in ring order, starting at
// anchor. A nil anchor writes nothing.
func Print(w io.Writer, anchor *tree.Node, opts ...Option) error {
	return Walk(anchor, func(n *tree.Node) error {
		_, err := fmt.Fprintf(w, "%f %f\n", n.X, n.Y)
		return err
	}, opts...)
}

// Len returns the number of nodes in the ring.
func Len(anchor *tree.Node, opts ...Option) (int, error) {
	var n int
	err := Walk(anchor, func(*tree.Node) error {
		n++
		return nil
	}, opts...)
	return n, err
}

// Order returns the ring members in Next order starting at anchor.
func Order(anchor *tree.Node, opts ...Option) ([]*tree.Node, error) {
	var out []*tree.Node
	err := Walk(anchor, func(n *tree.Node) error {
		out = append(out, n)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
