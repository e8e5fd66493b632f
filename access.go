package array

// At returns the element at pos, or ErrIndexOutOfBounds if pos is not a
// valid index. O(log N). This is the checked accessor of spec.md §7's
// two-tier error taxonomy.
func (t *Tree[T]) At(pos int) (T, error) {
	var zero T
	if err := t.checkRange(pos); err != nil {
		return zero, err
	}
	target, offset, _ := descend[T](t.root, pos, 0, 0)
	leaf := asLeaf(target)
	return leaf.elems[offset], nil
}

// Index returns the element at pos without bounds checking. This is the
// unchecked accessor SPEC_FULL.md §5 restores alongside At, per spec.md §7
// ("Out-of-range access on the unchecked accessor is undefined
// behaviour"): an out-of-range pos may panic, or may return a stale or zero
// value from a leaf's unused slots.
func (t *Tree[T]) Index(pos int) T {
	target, offset, _ := descend[T](t.root, pos, 0, 0)
	leaf := asLeaf(target)
	return leaf.elems[offset]
}

// Set overwrites the element at pos with v. O(log N).
func (t *Tree[T]) Set(pos int, v T) error {
	if err := t.checkRange(pos); err != nil {
		return err
	}
	target, offset, _ := descend[T](t.root, pos, 0, 0)
	leaf := asLeaf(target)
	return t.cfg.Mover.EmplaceOne(&leaf.elems[offset], v)
}

// Front returns the first element.
func (t *Tree[T]) Front() (T, error) { return t.At(0) }

// Back returns the last element.
func (t *Tree[T]) Back() (T, error) { return t.At(t.count - 1) }
