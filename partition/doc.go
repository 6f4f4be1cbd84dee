// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// Package partition builds the recursively partitioned 2D point tree that the
// tour builder consumes.
//
// Canonical model:
//   - Build(n, dir, lo, nproc, minX, maxX, minY, maxY) places one point per
//     tree node. dir != 0 splits the rectangle on X, dir == 0 on Y; the split
//     coordinate is drawn from a truncated-exponential distribution centred in
//     the rectangle (points cluster near the cut), the other coordinate is
//     uniform. Both children receive n/2 points, the flipped direction and
//     half of the partitions: the left half starts at lo+nproc/2, the right
//     half at lo.
//   - Node.Size records n, the requested point count of the subtree.
//   - n == 0 yields an empty (nil) tree.
//
// Memory:
//   - All nodes come from one slab (Arena) sized exactly before construction.
//     Nodes are never freed or moved; *tree.Node pointers stay valid for the
//     arena's lifetime and serve as stable node identities.
//
// Determinism:
//   - Draws come from a seeded *rand.Rand (WithSeed / WithRand). Without an
//     option the fixed default seed is used, so identical inputs give
//     identical trees.
//
// Complexity:
//   - Time:  O(N) where N = CountNodes(n) ≈ 2^(⌊log2 n⌋+1) − 1.
//   - Space: O(N) nodes in one allocation + O(N) owner tags.
package partition
