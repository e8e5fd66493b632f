package array

// Cursor is the external input cursor pair consumed by bulk insert (spec.md
// §6 "Input cursor pair"): an advance operation, a dereference, and
// equality with a sentinel folded into More. Cursor is immutable-style
// (Next returns the advanced cursor) so Mover.FillFrom can roll back to an
// earlier cursor value on failure without the caller needing to rewind
// anything stateful.
type Cursor[T any] interface {
	// More reports whether a further element is available.
	More() bool
	// Next returns the current element and a cursor advanced past it. Next
	// must not be called when More is false.
	Next() (T, Cursor[T], error)
}

// SizedCursor is a Cursor that can report its remaining length in O(1),
// letting bulk insert skip the "peek ahead" classification step of spec.md
// §4.7 and go straight to the small-vs-large decision.
type SizedCursor[T any] interface {
	Cursor[T]
	Remaining() int
}

// sliceCursor adapts a slice to Cursor/SizedCursor; this is what Insert and
// InsertSlice build internally.
type sliceCursor[T any] struct {
	s []T
}

// SliceCursor returns a SizedCursor over s. s is not retained past the
// calls FillFrom makes against it during a single bulk operation, but it is
// not copied either: callers should not mutate s concurrently with the
// bulk operation that consumes it.
func SliceCursor[T any](s []T) SizedCursor[T] {
	return sliceCursor[T]{s: s}
}

func (c sliceCursor[T]) More() bool { return len(c.s) > 0 }

func (c sliceCursor[T]) Next() (T, Cursor[T], error) {
	v := c.s[0]
	return v, sliceCursor[T]{s: c.s[1:]}, nil
}

func (c sliceCursor[T]) Remaining() int { return len(c.s) }
