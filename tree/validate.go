package tree

import "fmt"

// Validate checks the tree-shape invariant: every node reachable from root has
// exactly one incoming tree edge, so Left/Right never form a cycle and no
// subtree is shared. A nil root is valid.
//
// The check is iterative, so it terminates even on a cyclic input.
//
// Complexity: O(n) time, O(n) space.
func Validate(root *Node) error {
	if root == nil {
		return nil
	}

	var (
		seen  = make(map[*Node]struct{})
		stack = []*Node{root}
		n     *Node
		ok    bool
	)
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok = seen[n]; ok {
			return fmt.Errorf("tree: node (%f,%f): %w", n.X, n.Y, ErrSharedNode)
		}
		seen[n] = struct{}{}

		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return nil
}
