package segtree

import "errors"

var (
	// ErrEmptyInput signals a construction attempt from zero elements.
	ErrEmptyInput = errors.New("segtree: empty input")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidRange signals a malformed or out-of-bounds query range.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrWorkerFailure signals that a parallel query worker terminated abnormally.
	ErrWorkerFailure = errors.New("segtree: worker failure")
)
