// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// dist.go - coordinate distributions used by Build.

package partition

import (
	"math"
	"math/rand"
)

// e12 is e^12, the scale of the truncated-exponential split distribution.
var e12 = math.Exp(12)

// median draws a split coordinate in [lo, hi]. The density peaks at the
// centre of the interval and decays exponentially towards both ends, so
// sibling partitions get points packed near their shared border.
//
// Complexity: O(1).
func median(r *rand.Rand, lo, hi float64) float64 {
	var (
		t   = r.Float64()
		off float64
	)
	if t > 0.5 {
		off = math.Log(1.0-(2.0*(e12-1)*(t-0.5)/e12)) / 12.0
	} else {
		off = -math.Log(1.0-(2.0*(e12-1)*t/e12)) / 12.0
	}
	// off ∈ [-1, 1]; map to [lo, hi].
	return (off+1.0)*(hi-lo)/2.0 + lo
}

// uniform draws a coordinate uniformly from [lo, hi).
//
// Complexity: O(1).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// Log2Ceil returns the smallest j ≥ 0 with 2^j ≥ num, i.e. the number of
// halvings needed to spread num partitions down to one. num ≤ 1 yields 0.
//
// Complexity: O(log num).
func Log2Ceil(num int) int {
	var (
		j = 0
		k = 1
	)
	for k < num {
		k *= 2
		j++
	}
	return j
}
