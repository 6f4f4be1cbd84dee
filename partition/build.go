// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// build.go - Build / BuildTree constructors.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeSize); n == 0 ⇒ empty arena, nil root.
//   - nproc ≥ 1 and lo ≥ 0 (else ErrBadPartitionCount).
//   - minX ≤ maxX, minY ≤ maxY, all finite (else ErrBadBounds).
//   - Returns only sentinel errors wrapped with method context; never panics
//     on user input.
//
// Draw order (fixed, for reproducibility):
//   split coordinate → left subtree → right subtree → free coordinate.

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourtree/tree"
)

const methodBuild = "Build"

// builder carries the per-construction state through the recursion.
type builder struct {
	cfg   buildConfig
	arena *Arena
}

// Build constructs a partition tree of n points over the rectangle
// [minX,maxX]×[minY,maxY] and returns the arena holding it.
// dir selects the first split axis (non-zero ⇒ X), lo/nproc describe the
// partition placement of the root (see package doc).
func Build(n, dir, lo, nproc int, minX, maxX, minY, maxY float64, opts ...Option) (*Arena, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrNegativeSize)
	}
	if nproc < 1 || lo < 0 {
		return nil, fmt.Errorf("%s: lo=%d nproc=%d: %w", methodBuild, lo, nproc, ErrBadPartitionCount)
	}
	if !finite(minX, maxX, minY, maxY) || minX > maxX || minY > maxY {
		return nil, fmt.Errorf("%s: [%g,%g]x[%g,%g]: %w", methodBuild, minX, maxX, minY, maxY, ErrBadBounds)
	}

	b := &builder{
		cfg:   newBuildConfig(opts...),
		arena: newArena(CountNodes(n)),
	}
	b.arena.root = b.build(n, dir, lo, nproc, minX, maxX, minY, maxY)

	return b.arena, nil
}

// BuildTree is Build returning only the root, for callers that do not need
// the arena.
func BuildTree(n, dir, lo, nproc int, minX, maxX, minY, maxY float64, opts ...Option) (*tree.Node, error) {
	a, err := Build(n, dir, lo, nproc, minX, maxX, minY, maxY, opts...)
	if err != nil {
		return nil, err
	}
	return a.Root(), nil
}

func (b *builder) build(n, dir, lo, nproc int, minX, maxX, minY, maxY float64) *tree.Node {
	if n == 0 {
		return nil
	}

	t := b.arena.alloc(lo)
	rng := b.cfg.rng

	var med float64
	if dir != 0 {
		med = median(rng, minX, maxX)
		t.Left = b.build(n/2, 0, lo+nproc/2, nproc/2, minX, med, minY, maxY)
		t.Right = b.build(n/2, 0, lo, nproc/2, med, maxX, minY, maxY)
		t.X = med
		t.Y = uniform(rng, minY, maxY)
	} else {
		med = median(rng, minY, maxY)
		t.Left = b.build(n/2, 1, lo+nproc/2, nproc/2, minX, maxX, minY, med)
		t.Right = b.build(n/2, 1, lo, nproc/2, minX, maxX, med, maxY)
		t.Y = med
		t.X = uniform(rng, minX, maxX)
	}
	t.Size = n

	return t
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
