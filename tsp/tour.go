// Package tsp - tour inspection utilities.
//
// Provided helpers:
//   - ValidateTour: the ring at anchor is valid and holds exactly the tree's nodes.
//   - TreeUnchanged: snapshot/compare of tree links around a mutation.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
)

// ValidateTour checks that the ring at anchor is a valid ring (see
// ring.Validate) whose members are exactly the nodes reachable from root.
// A nil root requires a nil anchor.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(root, anchor *tree.Node) error {
	if root == nil || anchor == nil {
		if root == anchor {
			return nil
		}
		return ErrTourIncomplete
	}
	if err := ring.Validate(anchor); err != nil {
		return err
	}

	nodes := tree.Nodes(root)
	members := make(map[*tree.Node]struct{}, len(nodes))
	if err := ring.Walk(anchor, func(n *tree.Node) error {
		members[n] = struct{}{}
		return nil
	}); err != nil {
		return err
	}
	if len(members) != len(nodes) {
		return fmt.Errorf("tsp: ring has %d nodes, tree has %d: %w", len(members), len(nodes), ErrTourIncomplete)
	}

	var ok bool
	for _, n := range nodes {
		if _, ok = members[n]; !ok {
			return fmt.Errorf("tsp: node (%f,%f) missing from ring: %w", n.X, n.Y, ErrTourIncomplete)
		}
	}

	return nil
}

// TreeLinks is a snapshot of every node's Left/Right pointers.
type TreeLinks map[*tree.Node][2]*tree.Node

// SnapshotTree records the tree links reachable from root.
func SnapshotTree(root *tree.Node) TreeLinks {
	out := make(TreeLinks)
	for _, n := range tree.Nodes(root) {
		out[n] = [2]*tree.Node{n.Left, n.Right}
	}
	return out
}

// TreeUnchanged reports whether the tree links reachable from root match
// the snapshot exactly.
func TreeUnchanged(root *tree.Node, snap TreeLinks) bool {
	nodes := tree.Nodes(root)
	if len(nodes) != len(snap) {
		return false
	}
	for _, n := range nodes {
		links, ok := snap[n]
		if !ok || links[0] != n.Left || links[1] != n.Right {
			return false
		}
	}
	return true
}
