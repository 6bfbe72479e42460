/*
Package segtree provides a summed segment tree over a fixed-length array.

Segment Trees

A segment tree caches, for every contiguous sub-range of a source array, the
sum over that range. The tree is built once from the source array; afterwards
single elements may be re-assigned, while the array's length stays fixed.
This buys logarithmic range sums at the price of logarithmic writes:

	Operation       |   Segment tree  |  Plain slice
	----------------+-----------------+-------------
	Range sum       |   O(log n)      |   O(n)
	Point write     |   O(log n)      |   O(1)
	Point read      |   O(1)          |   O(1)
	Batch write (k) |   O(k log n)    |   O(k)

For workloads that interleave many range sums with occasional writes, such as
rolling index statistics or weighted sampling, the tree has stable performance
characteristics where a plain slice degrades.

Large range sums may additionally be evaluated on parallel worker goroutines
(see ParallelQuery); results are identical to the sequential walk.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
