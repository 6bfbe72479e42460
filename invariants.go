package segtree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for use in tests: every
// interior node must cover exactly the union of its children's contiguous,
// non-overlapping ranges and cache the sum of their sums, and every leaf
// must mirror the value table. Violations indicate a tree algorithm bug,
// not an input error.
func (t *Tree[T]) Check() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.values) == 0 {
		return fmt.Errorf("segtree: tree has no leaves")
	}
	if len(t.leafs) != len(t.values) {
		return fmt.Errorf("segtree: leaf table length %d != value count %d",
			len(t.leafs), len(t.values))
	}
	root := t.nodes[0]
	if root.from != 0 || root.to != len(t.values)-1 {
		return fmt.Errorf("segtree: root covers [%d,%d], want [0,%d]",
			root.from, root.to, len(t.values)-1)
	}
	leaves, err := t.checkNode(0)
	if err != nil {
		return err
	}
	if leaves != len(t.values) {
		return fmt.Errorf("segtree: tree holds %d leaves, want %d", leaves, len(t.values))
	}
	for i, pos := range t.leafs {
		nd := t.nodes[pos]
		if nd.from != i || nd.to != i {
			return fmt.Errorf("segtree: leaf table entry %d points at node covering [%d,%d]",
				i, nd.from, nd.to)
		}
		if nd.sum != t.values[i] {
			return fmt.Errorf("segtree: leaf %d caches %v, value table holds %v",
				i, nd.sum, t.values[i])
		}
	}
	return nil
}

func (t *Tree[T]) checkNode(pos int) (leaves int, err error) {
	if pos < 0 || pos >= len(t.nodes) {
		return 0, fmt.Errorf("segtree: child index %d outside arena of %d slots", pos, len(t.nodes))
	}
	nd := t.nodes[pos]
	if nd.from < 0 || nd.to < nd.from {
		return 0, fmt.Errorf("segtree: node %d covers invalid range [%d,%d]", pos, nd.from, nd.to)
	}
	if nd.left == noChild {
		if nd.right != noChild {
			return 0, fmt.Errorf("segtree: node %d has a right child but no left child", pos)
		}
		if nd.from != nd.to {
			return 0, fmt.Errorf("segtree: leaf node %d covers multi-element range [%d,%d]",
				pos, nd.from, nd.to)
		}
		return 1, nil
	}
	if nd.right == noChild {
		return 0, fmt.Errorf("segtree: node %d has a left child but no right child", pos)
	}
	if nd.left >= len(t.nodes) || nd.right >= len(t.nodes) {
		return 0, fmt.Errorf("segtree: node %d children outside arena", pos)
	}
	left, right := t.nodes[nd.left], t.nodes[nd.right]
	if left.from != nd.from || right.to != nd.to || left.to+1 != right.from {
		return 0, fmt.Errorf("segtree: node %d children [%d,%d]+[%d,%d] do not partition [%d,%d]",
			pos, left.from, left.to, right.from, right.to, nd.from, nd.to)
	}
	if nd.sum != left.sum+right.sum {
		return 0, fmt.Errorf("segtree: node %d caches %v, children sum to %v",
			pos, nd.sum, left.sum+right.sum)
	}
	nl, err := t.checkNode(nd.left)
	if err != nil {
		return 0, err
	}
	nr, err := t.checkNode(nd.right)
	if err != nil {
		return 0, err
	}
	return nl + nr, nil
}
