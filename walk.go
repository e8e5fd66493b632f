package array

// walk.go is the shared recursive interval-walking engine spec.md §4.8
// describes for C8: bulk erase and the visitor share a single engine
// parameterised by an action capability. Grounded on btree/tree.go's
// deleteRecursive partial/whole/partial child walk, generalised into the
// single action-parameterised shape spec.md §4.8 asks for, and on
// original_source/trunk/btree_seq.h's erase_helper/visitor_helper pair for
// the decrement/shiftArray/processLeaf naming.
type walkAction[T any] struct {
	// decrement biases a branch's nums[i] slot by d elements as the walk
	// passes through child i. nil for the visitor (spec.md: "zero for the
	// visitor").
	decrement func(b *branchNode[T], i, d int)
	// shiftArray is true for erase: after processing, the branch's
	// child/nums arrays are compacted to drop any child that became empty.
	shiftArray bool
	// processLeaf performs the action on leaf[start:end) and returns true
	// to short-circuit the walk (the visitor's predicate accepted an
	// element).
	processLeaf func(leaf *leafNode[T], start, end int) bool
}

// walkInterval walks the interval [start, start+diff) relative to n,
// processing leaves left to right through action.processLeaf, and returns
// true if the walk was short-circuited.
func (t *Tree[T]) walkInterval(n node[T], start, diff int, action *walkAction[T]) bool {
	if diff == 0 {
		return false
	}
	if n.isLeaf() {
		leaf := asLeaf(n)
		return action.processLeaf(leaf, start, start+diff)
	}
	b := asBranch(n)
	i := 0
	rem := start
	for rem >= b.nums[i] {
		rem -= b.nums[i]
		i++
	}
	remaining := diff
	short := false
	for remaining > 0 {
		take := b.nums[i] - rem
		if take > remaining {
			take = remaining
		}
		if action.decrement != nil {
			action.decrement(b, i, take)
		}
		if t.walkInterval(b.children[i], rem, take, action) {
			short = true
			break
		}
		remaining -= take
		rem = 0
		i++
	}
	if action.shiftArray {
		t.compactEmptyChildren(b)
	}
	return short
}

// compactEmptyChildren removes (and deallocates) any child of b that has
// become empty, shifting the remaining children left. Part of spec.md
// §4.8's "compact the child[]/nums[] arrays to remove the fully-consumed
// children; if the branch becomes empty it is deallocated" — an empty
// branch child (fill==0 after its own compaction) is deallocated here like
// an empty leaf; an emptied root is released by deepSew's clear.
func (t *Tree[T]) compactEmptyChildren(b *branchNode[T]) {
	w := 0
	for i := 0; i < b.fill; i++ {
		child := b.children[i]
		empty := child.isLeaf() && asLeaf(child).fill == 0
		if !empty && !child.isLeaf() {
			empty = asBranch(child).fill == 0
		}
		if empty {
			if child.isLeaf() {
				t.deleteLeaf(asLeaf(child))
			} else {
				t.deleteBranch(asBranch(child))
			}
			continue
		}
		if w != i {
			b.children[w] = child
			b.nums[w] = b.nums[i]
		}
		w++
	}
	for k := w; k < b.fill; k++ {
		b.children[k] = nil
	}
	b.fill = w
}
