// Package tsp turns a partition tree into a closed tour, in place.
//
// The tour is a ring threaded through the tree's own nodes (tree.Node.Next /
// tree.Node.Prev); no node is copied and no tree link is touched. The
// heuristic is the classic divide-and-conquer partition tour:
//
//   - Conquer: a subtree with Size ≤ minSize is flattened and grown into a
//     ring by nearest-member insertion. Each new point goes next to its
//     closest ring member, on whichever side (prev or next) adds the smaller
//     detour.
//   - Merge: the tours of the left and right subtrees are joined through their
//     parent node t. For each tour the best edge next to t is located, then the
//     cheapest of the four possible reconnections is applied (reversing one
//     tour where the orientation requires it). The parent becomes the anchor.
//
// Entry points:
//
//   - Solve(root, minSize, nproc, opts)                 → anchor
//   - SolveContext(ctx, root, minSize, nproc, opts)     → anchor, Stats
//   - TwoOpt(anchor, opts)                              optional local search
//   - Length(anchor) / ValidateTour(root, anchor)       inspection helpers
//
// Options:
//
//   - Nearest:   NearestLinear (ring scan, first minimum wins) or NearestRTree
//     (tidwall/rtree index over the growing ring).
//   - Parallel:  solve sibling subtrees concurrently while nproc > 1. Subtrees
//     are disjoint, so the tour is identical to the sequential one.
//   - TwoOpt / TwoOptMaxIters / TimeLimit / Eps: post-pass 2-opt.
//
// Errors: only sentinels from types.go, wrapped with context.
//
// Complexity:
//
//   - Conquer: O(m²) per partition of m ≤ minSize points (linear),
//     O(m log m) expected with the R-tree.
//   - Merge:   O(size of both tours) per internal node ⇒ O(N log N) overall.
//   - TwoOpt:  O(N²) per sweep; bound it with TwoOptMaxIters or TimeLimit.
package tsp
