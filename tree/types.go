package tree

import "errors"

// ErrSharedNode is returned by Validate when a node is reachable through more
// than one tree edge (shared subtree or tree cycle).
var ErrSharedNode = errors.New("tree: node reachable through more than one tree edge")

// Node is one point of the partition tree and, once the tour is built, one
// element of the tour ring.
//
// Ownership: Left/Right are the owning tree links; Next/Prev are non-owning
// relation links written only by the tour builder. The tree links are never
// changed after construction.
type Node struct {
	// Size is the partition weight assigned by the constructor
	// (number of points requested for this subtree).
	Size int

	// X, Y are the point coordinates; immutable after construction.
	X, Y float64

	// Left, Right are the partition-tree children (nil when absent).
	Left, Right *Node

	// Next, Prev are the ring links (nil until the tour is built).
	Next, Prev *Node
}

// IsLeaf reports whether n has no tree children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// InRing reports whether n has been linked into a ring.
func (n *Node) InRing() bool {
	return n.Next != nil && n.Prev != nil
}
