package array

// iterator.go implements C10 (spec.md §4.10): a lazy positional iterator
// carrying the absolute index as ground truth, with a cached leaf and
// in-leaf offset so sequential stepping is amortized O(1) instead of a
// fresh O(log N) descent per step. Grounded on btree/cursor.go's Cursor/
// Seek shape, reworked from the teacher's persistent-path cursor (which
// re-seeks through an immutable snapshot) into a cache that re-seeks only
// when it notices it has walked off the cached leaf.
type Iterator[T any] struct {
	t      *Tree[T]
	pos    int // absolute index; == t.count at end()
	leaf   *leafNode[T]
	offset int // pos's offset within leaf, valid only if leaf != nil
}

// Begin returns an iterator positioned at index 0.
func (t *Tree[T]) Begin() *Iterator[T] { return t.At_(0) }

// End returns an iterator positioned one past the last element; dereferencing
// it is invalid, matching the half-open-range convention spec.md §4.10 uses
// throughout (Erase, Visit, SplitRight all take half-open ranges).
func (t *Tree[T]) End() *Iterator[T] { return t.At_(t.count) }

// At_ returns an iterator positioned at pos (which may equal t.count, the
// end position). Named with a trailing underscore to avoid colliding with
// Tree.At, the checked-value accessor.
func (t *Tree[T]) At_(pos int) *Iterator[T] {
	it := &Iterator[T]{t: t, pos: pos}
	it.resync()
	return it
}

// resync re-descends from the root to locate it.pos's leaf and in-leaf
// offset. A no-op (leaving leaf nil) when pos is the end position of an
// empty tree or the tree's own end().
func (it *Iterator[T]) resync() {
	t := it.t
	if t.root == nil || it.pos >= t.count {
		it.leaf = nil
		it.offset = 0
		return
	}
	target, offset, _ := descend[T](t.root, it.pos, 0, 0)
	it.leaf = asLeaf(target)
	it.offset = offset
}

// Valid reports whether the iterator can be dereferenced.
func (it *Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < it.t.count }

// Pos returns the iterator's absolute index.
func (it *Iterator[T]) Pos() int { return it.pos }

// Get returns the element the iterator refers to. Panics like a Go slice
// index if the iterator is not Valid — this is the iterator's "unchecked
// accessor" counterpart to Tree.Index.
func (it *Iterator[T]) Get() T {
	assert(it.leaf != nil, "Iterator.Get: iterator not valid")
	return it.leaf.elems[it.offset]
}

// Set overwrites the element the iterator refers to.
func (it *Iterator[T]) Set(v T) error {
	assert(it.leaf != nil, "Iterator.Set: iterator not valid")
	return it.t.cfg.Mover.EmplaceOne(&it.leaf.elems[it.offset], v)
}

// Next advances the iterator by one position. Amortized O(1): only when the
// step walks off the end of the cached leaf (once per leaf) does it move to
// the next leaf, through the parent chain (advanceToNextLeaf) rather than a
// descent from the root.
func (it *Iterator[T]) Next() {
	it.pos++
	if it.leaf == nil {
		it.resync()
		return
	}
	it.offset++
	if it.offset >= it.leaf.fill {
		if it.pos >= it.t.count {
			it.leaf = nil
			it.offset = 0
			return
		}
		it.advanceToNextLeaf()
	}
}

// Prev steps the iterator back by one position. A step within the cached
// leaf is O(1); a step off the front of the cached leaf re-descends from
// the root (resync), with no parent-chain shortcut.
func (it *Iterator[T]) Prev() {
	assert(it.pos > 0, "Iterator.Prev: already at begin")
	it.pos--
	if it.leaf != nil && it.offset > 0 {
		it.offset--
		return
	}
	it.resync()
}

// advanceToNextLeaf moves the cache to the leaf immediately to the right of
// it.leaf, using the parent chain instead of a full re-descent from the
// root.
func (it *Iterator[T]) advanceToNextLeaf() {
	child := node[T](it.leaf)
	parent := it.leaf.parent
	for parent != nil {
		idx := indexOfChild(parent, child)
		if idx+1 < parent.fill {
			n := parent.children[idx+1]
			for !n.isLeaf() {
				n = asBranch(n).children[0]
			}
			it.leaf = asLeaf(n)
			it.offset = 0
			return
		}
		child = node[T](parent)
		parent = parent.parent
	}
	// Walked off the rightmost leaf without finding a right sibling at any
	// level: resync handles it.pos == t.count (the end position) already;
	// for any other caller error this falls back to a full re-descent.
	it.resync()
}

// Advance moves the iterator n positions forward (n may be negative),
// re-descending once from the root rather than stepping n times, whatever
// the size of n.
func (it *Iterator[T]) Advance(n int) {
	it.pos += n
	it.resync()
}

// Range returns a forward iterator pair [Begin(), End()) for use in a
// for-loop, per spec.md §4.10's iterator-pair convention.
func (t *Tree[T]) Range() (begin, end *Iterator[T]) {
	return t.Begin(), t.End()
}
