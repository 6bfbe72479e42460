package segtree

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parallelSpan is the minimum node span for which ParallelQuery hands the
// left branch of a split to a worker goroutine. Below it, goroutine spawn
// and join overhead dominates the sequential walk.
const parallelSpan = 4096

// ParallelQuery returns the sum of the elements in the inclusive range
// [lo,hi], evaluating the two branches of large splits on separate
// goroutines.
//
// Results are identical to Query for every valid input; parallelism is a
// performance optimization only. At most one extra goroutine is spawned per
// split, and splits of fewer than parallelSpan leaves fall back to the
// sequential walk, so total fan-out is bounded by the tree height. A worker
// that panics is reported as ErrWorkerFailure.
//
// The tree's read lock is held once for the whole walk; worker goroutines
// are read-only participants and need no exclusion from each other.
func (t *Tree[T]) ParallelQuery(lo, hi int) (T, error) {
	var zero T
	if err := t.checkRange(lo, hi); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	sum, err := t.parallelRangeSum(0, lo, hi)
	if err != nil {
		tracer().Errorf("parallel query [%d,%d]: %v", lo, hi, err)
		return zero, err
	}
	return sum, nil
}

func (t *Tree[T]) parallelRangeSum(pos, lo, hi int) (T, error) {
	var zero T
	nd := &t.nodes[pos]
	if lo <= nd.from && nd.to <= hi {
		return nd.sum, nil
	}
	if hi < nd.from || lo > nd.to {
		return zero, nil
	}
	if nd.to-nd.from+1 < parallelSpan {
		return t.rangeSum(pos, lo, hi), nil
	}
	var left T
	leftPos := nd.left
	g := new(errgroup.Group)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrWorkerFailure, r)
			}
		}()
		left, err = t.parallelRangeSum(leftPos, lo, hi)
		return err
	})
	right, rightErr := t.parallelRangeSum(nd.right, lo, hi)
	if err := g.Wait(); err != nil {
		return zero, err
	}
	if rightErr != nil {
		return zero, rightErr
	}
	return left + right, nil
}
