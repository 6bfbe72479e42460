package segtree

import (
	"fmt"
	"sort"
)

// Entry is one (index, value) assignment of a batch update.
type Entry[T Value] struct {
	Index int
	Value T
}

// Update assigns value to the element at index and restores the sum
// invariant along the path from that leaf to the root.
//
// The leaf is found in O(1) through the leaf table; ancestors are recomputed
// with an iterative parent walk, as the heap layout makes the parent of
// arena slot i derivable as (i-1)/2.
func (t *Tree[T]) Update(index int, value T) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setLeaf(index, value)
	t.bubbleUp(t.leafs[index])
	return nil
}

// BatchUpdate applies all entries in order, leaving the tree in the same
// state as applying each entry through Update sequentially; for duplicate
// indices the last write wins.
//
// Validation is fail-fast: on the first out-of-range index the remaining
// entries are discarded and ErrIndexOutOfBounds is returned. Entries already
// applied stay applied, and their ancestor sums are restored before
// returning, so a partial failure never leaves the tree torn.
//
// Rather than one root-to-leaf walk per entry, all touched leaves are set
// first and each affected ancestor is recomputed exactly once.
func (t *Tree[T]) BatchUpdate(entries []Entry[T]) error {
	if len(entries) == 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	touched := make(map[int]struct{}, len(entries))
	for i, e := range entries {
		if e.Index < 0 || e.Index >= len(t.values) {
			t.restoreAncestors(touched)
			tracer().Errorf("batch update aborted at entry %d: index %d outside [0,%d)",
				i, e.Index, len(t.values))
			return fmt.Errorf("%w: batch entry %d has index %d outside [0,%d)",
				ErrIndexOutOfBounds, i, e.Index, len(t.values))
		}
		t.setLeaf(e.Index, e.Value)
		touched[t.leafs[e.Index]] = struct{}{}
	}
	t.restoreAncestors(touched)
	return nil
}

// setLeaf writes through to the value table and the leaf's arena slot.
// Ancestor sums are stale until bubbleUp or restoreAncestors runs.
func (t *Tree[T]) setLeaf(index int, value T) {
	t.values[index] = value
	t.nodes[t.leafs[index]].sum = value
}

// bubbleUp recomputes every ancestor of arena slot pos from its children.
func (t *Tree[T]) bubbleUp(pos int) {
	for pos > 0 {
		pos = (pos - 1) / 2
		nd := &t.nodes[pos]
		nd.sum = t.nodes[nd.left].sum + t.nodes[nd.right].sum
	}
}

// restoreAncestors recomputes the ancestors of the given leaf arena slots,
// each exactly once. A child's arena index is always larger than its
// parent's, so descending index order is deepest-first.
func (t *Tree[T]) restoreAncestors(touched map[int]struct{}) {
	if len(touched) == 0 {
		return
	}
	pending := make(map[int]struct{})
	for pos := range touched {
		for pos > 0 {
			pos = (pos - 1) / 2
			if _, seen := pending[pos]; seen {
				break // the rest of this path is already scheduled
			}
			pending[pos] = struct{}{}
		}
	}
	order := make([]int, 0, len(pending))
	for pos := range pending {
		order = append(order, pos)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(order)))
	for _, pos := range order {
		nd := &t.nodes[pos]
		nd.sum = t.nodes[nd.left].sum + t.nodes[nd.right].sum
	}
}
