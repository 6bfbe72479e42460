package segtree

import "fmt"

// Query returns the sum of the elements in the inclusive range [lo,hi].
//
// Both bounds must lie in [0,Len()) and lo must not exceed hi; a violation
// is reported as ErrInvalidRange and is never silently clamped. Query is
// read-only: no node sum is recomputed during the walk.
func (t *Tree[T]) Query(lo, hi int) (T, error) {
	var zero T
	if err := t.checkRange(lo, hi); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rangeSum(0, lo, hi), nil
}

func (t *Tree[T]) checkRange(lo, hi int) error {
	n := len(t.values)
	if lo > hi {
		return fmt.Errorf("%w: lo %d > hi %d", ErrInvalidRange, lo, hi)
	}
	if lo < 0 || lo >= n {
		return fmt.Errorf("%w: lo %d outside [0,%d)", ErrInvalidRange, lo, n)
	}
	if hi >= n {
		return fmt.Errorf("%w: hi %d outside [0,%d)", ErrInvalidRange, hi, n)
	}
	return nil
}

// rangeSum walks the subtree at arena slot pos, decomposing [lo,hi] into
// fully-contained nodes (cached sum), fully-disjoint nodes (zero), and
// partial overlaps (recurse into both children).
func (t *Tree[T]) rangeSum(pos, lo, hi int) T {
	nd := &t.nodes[pos]
	if lo <= nd.from && nd.to <= hi {
		return nd.sum
	}
	if hi < nd.from || lo > nd.to {
		var zero T
		return zero
	}
	assert(nd.left != noChild && nd.right != noChild,
		"partial range overlap must occur at an interior node")
	return t.rangeSum(nd.left, lo, hi) + t.rangeSum(nd.right, lo, hi)
}
