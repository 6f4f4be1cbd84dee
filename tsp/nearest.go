package tsp

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/katalvlaran/tourtree/tree"
)

// nearestIndex answers "which ring member is closest to p" while a ring
// grows one node at a time.
type nearestIndex interface {
	// nearest returns the member closest to p.
	nearest(p *tree.Node) *tree.Node
	// add registers p after it has been linked into the ring.
	add(p *tree.Node)
}

// newIndex builds the configured index seeded with the 1-node ring at seed.
func newIndex(kind Nearest, seed *tree.Node) nearestIndex {
	if kind == NearestRTree {
		ix := &rtreeIndex{}
		ix.add(seed)
		return ix
	}
	return linearIndex{anchor: seed}
}

// linearIndex scans the ring itself; it needs no bookkeeping.
type linearIndex struct {
	anchor *tree.Node
}

func (ix linearIndex) nearest(p *tree.Node) *tree.Node {
	return nearestOnRing(ix.anchor, p)
}

func (linearIndex) add(*tree.Node) {}

// nearestOnRing scans the ring from anchor in Next order and returns the
// first member at minimum distance from p.
//
// Complexity: O(ring size).
func nearestOnRing(anchor, p *tree.Node) *tree.Node {
	var (
		best = anchor
		bd   = distance(p, anchor)
		cur  *tree.Node
		d    float64
	)
	for cur = anchor.Next; cur != anchor; cur = cur.Next {
		d = distance(cur, p)
		if d < bd {
			bd = d
			best = cur
		}
	}
	return best
}

// rtreeIndex keeps ring members in an R-tree of degenerate (point) boxes.
type rtreeIndex struct {
	tr rtree.RTreeG[*tree.Node]
}

func (ix *rtreeIndex) add(p *tree.Node) {
	pt := [2]float64{p.X, p.Y}
	ix.tr.Insert(pt, pt, p)
}

func (ix *rtreeIndex) nearest(p *tree.Node) *tree.Node {
	var best *tree.Node
	ix.tr.Nearby(
		func(lo, hi [2]float64, _ *tree.Node, _ bool) float64 {
			return boxDist2(p.X, p.Y, lo, hi)
		},
		func(_, _ [2]float64, data *tree.Node, _ float64) bool {
			best = data
			return false
		},
	)
	return best
}

// boxDist2 is the squared distance from (x, y) to the box [lo, hi];
// zero inside the box.
func boxDist2(x, y float64, lo, hi [2]float64) float64 {
	dx := math.Max(0, math.Max(lo[0]-x, x-hi[0]))
	dy := math.Max(0, math.Max(lo[1]-y, y-hi[1]))
	return dx*dx + dy*dy
}
