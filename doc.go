// Package tourtree builds closed tours through random points by partition:
// the points are spread over a balanced two-dimensional partition tree, each
// small partition is toured by nearest insertion, and sibling tours are
// merged through their parent node.
//
// Every point is a single tree.Node that plays two roles at once: a tree
// node (Left/Right) while the partition is built, and a tour member
// (Next/Prev) once the solver has run.
//
// Packages:
//
//	tree/       - the dual-role Node, pre-order walk and print
//	ring/       - identity-terminated ring walk, print, validation, reversal
//	partition/  - random partition-tree construction over a rectangle (Arena)
//	tsp/        - conquer, merge, 2-opt polish, tour length and checks
//	render/     - Graphviz DOT and SVG of trees and rings
//	internal/   - benchmark driver, CLI, build info
//	cmd/tourbench - the benchmark binary
//
// Quick start:
//
//	root, _ := partition.BuildTree(1024, 0, 0, 4, 0, 1, 0, 1)
//	anchor, _ := tsp.Solve(root, 150, 4, tsp.DefaultOptions())
//	_ = ring.Print(os.Stdout, anchor)
package tourtree
