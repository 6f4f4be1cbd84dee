// SPDX-License-Identifier: MIT
// Package: tourtree/partition
//
// errors.go - sentinel errors for the partition package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w (method name, offending values).
//   • Construction never panics on user input; option constructors do.

package partition

import "errors"

// ErrNegativeSize indicates a negative point count.
var ErrNegativeSize = errors.New("partition: negative point count")

// ErrBadPartitionCount indicates nproc < 1 or lo < 0.
var ErrBadPartitionCount = errors.New("partition: invalid partition count or placement")

// ErrBadBounds indicates an inverted rectangle or non-finite coordinates.
var ErrBadBounds = errors.New("partition: invalid bounding rectangle")
