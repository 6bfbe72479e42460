package segtree

import (
	"fmt"
	"iter"
	"math/bits"
	"sync"
)

// Value is the element constraint for segment trees.
//
// Summation must be closed over the chosen type; callers pick a type wide
// enough for the total over the full array, as interior sums are cached
// eagerly during construction.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// noChild marks the child slots of leaf nodes.
const noChild = -1

// node is one arena entry. Interior nodes cache the sum over the inclusive
// leaf range [from,to]; their children partition that range contiguously.
// Leaf nodes have from == to and no children.
type node[T Value] struct {
	sum   T
	from  int
	to    int
	left  int // arena index of left child, or noChild
	right int // arena index of right child, or noChild
}

// Tree is a summed segment tree over a fixed-length array of T.
//
// The tree owns a flat arena of nodes in binary-heap order (children of slot
// i live at 2i+1 and 2i+2) plus a leaf table mapping each array index to the
// arena slot of its leaf. Structure is fixed at construction; updates only
// re-assign sums along root-to-leaf paths.
//
// Concurrency: a Tree is safe for concurrent use. Any number of readers
// (Query, ParallelQuery, At, Total) may run simultaneously; writers (Update,
// BatchUpdate) exclude all other operations on the same tree.
type Tree[T Value] struct {
	mu     sync.RWMutex
	nodes  []node[T]
	values []T   // current leaf values, aligned with the source array
	leafs  []int // array index -> arena slot of that leaf
}

// New builds a segment tree from values, taking ownership of the slice.
//
// The slice is retained as the tree's live leaf-value table: updates write
// through to it, and the caller must not modify it afterwards. Use FromSlice
// to keep the input untouched.
func New[T Value](values []T) (*Tree[T], error) {
	var zero T
	return newTree(values, zero)
}

// NewWithDefault is New with an explicit fill value for the unoccupied
// padding slots of the arena.
//
// The arena is sized to the next power of two, so for non-power-of-two
// inputs some slots are never claimed by a node. Queries never visit them;
// the fill value only matters to callers inspecting raw dumps.
func NewWithDefault[T Value](values []T, fill T) (*Tree[T], error) {
	return newTree(values, fill)
}

// FromSlice builds a segment tree from a copy of values.
func FromSlice[T Value](values []T) (*Tree[T], error) {
	return New(append([]T(nil), values...))
}

// FromSeq materializes a sequence and builds a segment tree from it.
//
// The sequence is drained completely before construction, as the tree needs
// a fixed leaf count up front.
func FromSeq[T Value](seq iter.Seq[T]) (*Tree[T], error) {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return New(values)
}

func newTree[T Value](values []T, fill T) (*Tree[T], error) {
	if len(values) == 0 {
		tracer().Errorf("segment tree: construction from empty input rejected")
		return nil, fmt.Errorf("%w: cannot build from zero elements", ErrEmptyInput)
	}
	nodes := make([]node[T], arenaSize(len(values)))
	for i := range nodes {
		nodes[i] = node[T]{sum: fill, from: -1, to: -1, left: noChild, right: noChild}
	}
	t := &Tree[T]{
		nodes:  nodes,
		values: values,
		leafs:  make([]int, len(values)),
	}
	t.build(0, 0, len(values)-1)
	tracer().Debugf("segment tree built: %d leaves in %d arena slots, height %d",
		len(values), len(nodes), t.Height())
	return t, nil
}

// build fills the subtree rooted at arena slot pos covering leaves [from,to]
// and returns its sum.
func (t *Tree[T]) build(pos, from, to int) T {
	if from == to {
		t.nodes[pos] = node[T]{sum: t.values[from], from: from, to: to, left: noChild, right: noChild}
		t.leafs[from] = pos
		return t.values[from]
	}
	// from + (to-from)/2 rather than (from+to)/2, which can overflow for
	// narrow index types.
	mid := from + (to-from)/2
	left, right := 2*pos+1, 2*pos+2
	leftSum := t.build(left, from, mid)
	rightSum := t.build(right, mid+1, to)
	t.nodes[pos] = node[T]{sum: leftSum + rightSum, from: from, to: to, left: left, right: right}
	return leftSum + rightSum
}

// arenaSize returns the arena capacity for n leaves: a full binary tree over
// the next power of two.
func arenaSize(n int) int {
	return 2*nextPow2(n) - 1
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Len returns the number of leaves, i.e. the length of the source array.
func (t *Tree[T]) Len() int {
	return len(t.values)
}

// Height returns the number of node levels, where 1 means a single-leaf tree.
func (t *Tree[T]) Height() int {
	return bits.Len(uint(nextPow2(len(t.values))))
}

// Total returns the sum over the complete array. It equals
// Query(0, Len()-1), without the range walk.
func (t *Tree[T]) Total() T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes[0].sum
}

// At returns the current value of the element at index.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if err := t.checkIndex(index); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.values[index], nil
}

func (t *Tree[T]) checkIndex(index int) error {
	if index < 0 || index >= len(t.values) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfBounds, index, len(t.values))
	}
	return nil
}
