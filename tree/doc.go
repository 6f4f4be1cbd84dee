// Package tree defines the node shared by the partition tree and the tour ring,
// plus the partition-tree side of it: pre-order traversal, printing and shape checks.
//
// A Node plays two roles at once:
//
//   - Partition vertex: Left and Right form a strict binary tree built once by
//     the partition constructor (see package partition).
//   - Ring element: Next and Prev thread the very same nodes into a circular
//     doubly-linked tour written by the tour builder (see packages ring and tsp).
//
// Both roles coexist for the node's whole lifetime; entering the ring never
// copies or reallocates a node, so pointer identity is node identity.
//
// Traversals:
//
//   - Walk(root, visit)  pre-order recursion (node, left subtree, right subtree).
//   - Nodes(root)        same order, explicit stack; safe for very deep trees.
//   - Print(w, root)     one "<x> <y>" line per node in pre-order.
//
// A nil root is a valid empty tree: every traversal returns immediately
// without error.
//
// Complexity:
//
//   - Walk/Nodes/Print/Count: O(n) time; O(h) stack for Walk, O(h) heap for Nodes.
//   - Validate:               O(n) time, O(n) space.
package tree
