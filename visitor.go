package array

// visitor.go implements the visit half of C8 (spec.md §4.8): scanning
// [start,end) left to right, applying pred to each element in place, and
// stopping early the first time pred returns true. Shares walk.go's engine
// with Erase, with decrement left nil (no subtree counts change) and
// shiftArray left false (no child ever disappears).

// Visit scans [start,end) in order, calling pred on each element by
// reference until pred returns true or the range is exhausted. It returns
// the absolute position where it stopped, or end if it scanned the whole
// range without a match.
func (t *Tree[T]) Visit(start, end int, pred func(*T) bool) (int, error) {
	if start < 0 || end > t.count || start > end {
		return -1, ErrIndexOutOfBounds
	}
	if start == end {
		return end, nil
	}
	found := end
	at := start
	action := &walkAction[T]{
		processLeaf: func(leaf *leafNode[T], lo, hi int) bool {
			for i := lo; i < hi; i++ {
				if pred(&leaf.elems[i]) {
					found = at + (i - lo)
					return true
				}
			}
			at += hi - lo
			return false
		},
	}
	t.walkInterval(t.root, start, end-start, action)
	return found, nil
}
