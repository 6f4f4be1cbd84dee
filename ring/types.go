package ring

import "errors"

var (
	// ErrRingUnclosed is returned when a walk exceeds its visit limit, or when
	// Validate finds a Next chain that never returns to the anchor.
	ErrRingUnclosed = errors.New("ring: next chain does not return to anchor")

	// ErrBrokenLink is returned when a ring member has a nil Next or Prev.
	ErrBrokenLink = errors.New("ring: nil ring link")

	// ErrBrokenInverse is returned by Validate when p.Next.Prev != p.
	ErrBrokenInverse = errors.New("ring: prev is not the inverse of next")
)

// Option configures a ring walk.
type Option func(*walkOptions)

// walkOptions holds the resolved knobs of a walk.
type walkOptions struct {
	// limit is the maximum number of visits; 0 means unbounded.
	limit int
}

// WithLimit bounds a walk to at most n visits. A ring longer than n (or a
// chain that never closes) yields ErrRingUnclosed. n == 0 means unbounded.
// Panics on negative n.
func WithLimit(n int) Option {
	if n < 0 {
		panic("ring: WithLimit(n<0)")
	}
	return func(o *walkOptions) {
		o.limit = n
	}
}

func resolve(opts []Option) walkOptions {
	var o walkOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
