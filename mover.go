package array

// Mover is the element-move policy the tree consumes (spec.md §4.1, C1).
// The core never assumes which realisation it has; it programs against
// this capability alone.
//
// Implementations must honor: MoveForward is safe when dst and src overlap
// with dst's start at or after src's start; MoveBackward is safe when dst's
// start is at or before src's start. Both move n elements and leave the
// vacated source slots logically destroyed.
type Mover[T any] interface {
	// MoveForward relocates n elements from src[:n] to dst[:n].
	MoveForward(dst, src []T, n int)
	// MoveBackward relocates n elements from src[:n] to dst[:n].
	MoveBackward(dst, src []T, n int)
	// Destroy destroys n elements in s[:n] in place (e.g. to drop
	// references so the GC can reclaim them). A no-op for FastMover.
	Destroy(s []T, n int)
	// FillFrom copy-constructs elements into dst[:k] from cur, advancing
	// cur, where k = min(len(dst), remaining input). If any construction
	// fails, already-constructed destinations in this call are destroyed
	// before the error is returned.
	FillFrom(dst []T, cur Cursor[T]) (k int, next Cursor[T], err error)
	// EmplaceOne copy-constructs a single element into *dst from src.
	EmplaceOne(dst *T, src T) error
}

// Cloner is implemented by element types whose copies may fail or require
// an explicit deep copy. SafeMover invokes Clone whenever it copy-constructs
// a value implementing Cloner (EmplaceOne, and so FillFrom); other values
// are copied by plain assignment. Relocations by MoveForward/MoveBackward
// never invoke Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// SafeMover is the safe element-move policy: new elements are
// copy-constructed through Cloner where the type implements it, and Destroy
// zeroes slots so the GC can reclaim what they referenced. MoveForward and
// MoveBackward relocate elements by plain slice copy, exactly as FastMover
// does: a relocation calls no Clone and does not zero the vacated source
// slots.
type SafeMover[T any] struct{}

func (SafeMover[T]) MoveForward(dst, src []T, n int) { copyElems(dst, src, n) }
func (SafeMover[T]) MoveBackward(dst, src []T, n int) { copyElems(dst, src, n) }

func (SafeMover[T]) Destroy(s []T, n int) {
	var zero T
	for i := 0; i < n; i++ {
		s[i] = zero
	}
}

func (m SafeMover[T]) FillFrom(dst []T, cur Cursor[T]) (int, Cursor[T], error) {
	k := 0
	for k < len(dst) && cur.More() {
		v, next, err := cur.Next()
		if err != nil {
			m.Destroy(dst, k)
			return 0, cur, err
		}
		if err := m.EmplaceOne(&dst[k], v); err != nil {
			m.Destroy(dst, k)
			return 0, cur, err
		}
		cur = next
		k++
	}
	return k, cur, nil
}

func (SafeMover[T]) EmplaceOne(dst *T, src T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		cloned, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = cloned
		return nil
	}
	*dst = src
	return nil
}

// FastMover is the fast element-move policy: moves are raw slice copies
// (memmove-equivalent), and Destroy is a no-op. This is legal only when T
// is trivially relocatable and trivially destructible — spec.md §4.1 and
// §9's open question. FastMover does not and cannot enforce this
// precondition for an arbitrary Go type parameter; instantiating it for a
// T holding resources it must release is the caller's responsibility to
// avoid.
type FastMover[T any] struct{}

func (FastMover[T]) MoveForward(dst, src []T, n int)  { copyElems(dst, src, n) }
func (FastMover[T]) MoveBackward(dst, src []T, n int) { copyElems(dst, src, n) }
func (FastMover[T]) Destroy(_ []T, _ int)             {}

func (FastMover[T]) FillFrom(dst []T, cur Cursor[T]) (int, Cursor[T], error) {
	k := 0
	for k < len(dst) && cur.More() {
		v, next, err := cur.Next()
		if err != nil {
			return 0, cur, err
		}
		dst[k] = v
		cur = next
		k++
	}
	return k, cur, nil
}

func (FastMover[T]) EmplaceOne(dst *T, src T) error {
	*dst = src
	return nil
}

// copyElems moves n elements from src[:n] to dst[:n]. Go's builtin copy
// already behaves like memmove for overlapping slices in either direction,
// so both MoveForward and MoveBackward share this helper; the two names
// are kept distinct to mirror spec.md §4.1's two directional primitives and
// the direction each call site is known to need.
func copyElems[T any](dst, src []T, n int) {
	copy(dst[:n], src[:n])
}
