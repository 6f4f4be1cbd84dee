package tree

import "fmt"

// Walk visits root and its descendants in pre-order: node, then the left
// subtree, then the right subtree. A nil root visits nothing.
//
// If visit returns an error the walk stops and that error is returned wrapped.
// Walk never mutates the tree.
//
// Complexity: O(n) time, O(h) recursion depth.
func Walk(root *Node, visit func(*Node) error) error {
	if root == nil {
		return nil
	}
	if err := visit(root); err != nil {
		return fmt.Errorf("tree: visit (%f,%f): %w", root.X, root.Y, err)
	}
	if err := Walk(root.Left, visit); err != nil {
		return err
	}

	return Walk(root.Right, visit)
}

// Nodes returns all nodes reachable from root in pre-order.
// It uses an explicit stack instead of recursion and yields exactly the
// order produced by Walk.
//
// Complexity: O(n) time, O(n) space for the result.
func Nodes(root *Node) []*Node {
	if root == nil {
		return nil
	}

	var (
		out   []*Node
		stack = []*Node{root}
		n     *Node
	)
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)

		// Right is pushed first so that Left is popped first.
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return out
}

// Count returns the number of nodes reachable from root.
func Count(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + Count(root.Left) + Count(root.Right)
}
