package array

// leaf_ops.go implements C2 (spec.md §4.2): insert/erase/shift within a
// single leaf, and leaf split / merge / balance of sibling leaves. Grounded
// on btree/mutation_helpers.go's removeLeafItemsRange/insertLeafItemsAt and
// btree/tree.go's rebalanceLeafChild, reworked from clone-then-replace
// (path-copy) into in-place shift-and-mutate, with an added parent
// back-pointer to maintain.

// insertRun shifts leaf.elems[o:fill) right by n and fills the resulting
// hole elems[o:o+n) from cur. The caller (C5/C6) must ensure fill+n does
// not exceed len(leaf.elems), i.e. Capacity plus the one headroom slot (see
// allocator.go); Insert then splits the leaf if fill exceeds Capacity.
func (t *Tree[T]) insertRun(leaf *leafNode[T], o, n int, cur Cursor[T]) (Cursor[T], error) {
	if n == 0 {
		return cur, nil
	}
	if o < leaf.fill {
		t.cfg.Mover.MoveBackward(leaf.elems[o+n:leaf.fill+n], leaf.elems[o:leaf.fill], leaf.fill-o)
	}
	k, next, err := t.cfg.Mover.FillFrom(leaf.elems[o:o+n], cur)
	if err != nil {
		// Roll the suffix shift back so the leaf is exactly as it was.
		if o < leaf.fill {
			t.cfg.Mover.MoveForward(leaf.elems[o:leaf.fill], leaf.elems[o+n:leaf.fill+n], leaf.fill-o)
		}
		return cur, err
	}
	assertEqual(k, n, "insertRun: FillFrom under-filled the requested run")
	leaf.fill += n
	return next, nil
}

func assertEqual(a, b int, msg string) {
	assert(a == b, msg)
}

// eraseRun destroys leaf.elems[o:o+n) and shifts the suffix left.
func (t *Tree[T]) eraseRun(leaf *leafNode[T], o, n int) {
	if n == 0 {
		return
	}
	t.cfg.Mover.Destroy(leaf.elems[o:o+n], n)
	tail := leaf.fill - (o + n)
	if tail > 0 {
		t.cfg.Mover.MoveForward(leaf.elems[o:o+tail], leaf.elems[o+n:o+n+tail], tail)
	}
	leaf.fill -= n
}

// splitLeaf splits leaf at local offset cut into leaf (kept, shrunk to
// [0,cut)) and a freshly allocated right sibling holding [cut,fill). The
// right sibling is not yet attached to any parent; the caller attaches it
// via attachSplit.
func (t *Tree[T]) splitLeaf(leaf *leafNode[T], cut int, fresh *leafNode[T]) {
	n := leaf.fill - cut
	if n > 0 {
		t.cfg.Mover.MoveForward(fresh.elems[:n], leaf.elems[cut:leaf.fill], n)
	}
	fresh.fill = n
	leaf.fill = cut
}

// tryMergeLeaves attempts to fold b.children[i+1] (a leaf) into the tail of
// b.children[i] (a leaf) when their combined size fits in one leaf's
// capacity. Returns false, leaving both untouched, if it does not fit.
func (t *Tree[T]) tryMergeLeaves(b *branchNode[T], i int) bool {
	left := asLeaf(b.children[i])
	right := asLeaf(b.children[i+1])
	if left.fill+right.fill > t.cfg.Capacity {
		return false
	}
	if right.fill > 0 {
		t.cfg.Mover.MoveForward(left.elems[left.fill:left.fill+right.fill], right.elems[:right.fill], right.fill)
	}
	left.fill += right.fill
	b.nums[i] += b.nums[i+1]
	t.deleteLeaf(right)
	t.deleteSlot(b, i+1, 1)
	return true
}

// balanceLeaves moves elements from the fatter of two sibling leaves into
// the thinner one so both end at (roughly) the average, per spec.md
// §4.2's Balance-LR/Balance-RL. left is b.children[i], right is
// b.children[i+1]; exactly one of them is known to be thin.
func (t *Tree[T]) balanceLeaves(b *branchNode[T], i int) {
	left := asLeaf(b.children[i])
	right := asLeaf(b.children[i+1])
	total := left.fill + right.fill
	target := total / 2
	if left.fill > target {
		moves := left.fill - target
		// Shift right's contents forward to make room at its head, then
		// copy the tail of left into it.
		if right.fill > 0 {
			t.cfg.Mover.MoveBackward(right.elems[moves:moves+right.fill], right.elems[:right.fill], right.fill)
		}
		t.cfg.Mover.MoveForward(right.elems[:moves], left.elems[left.fill-moves:left.fill], moves)
		right.fill += moves
		left.fill -= moves
	} else if right.fill > target {
		moves := right.fill - target
		t.cfg.Mover.MoveForward(left.elems[left.fill:left.fill+moves], right.elems[:moves], moves)
		left.fill += moves
		tail := right.fill - moves
		if tail > 0 {
			t.cfg.Mover.MoveForward(right.elems[:tail], right.elems[moves:moves+tail], tail)
		}
		right.fill -= moves
	}
	b.nums[i] = left.fill
	b.nums[i+1] = right.fill
}

func (t *Tree[T]) deleteLeaf(l *leafNode[T]) {
	t.cfg.Mover.Destroy(l.elems[:l.fill], l.fill)
	t.cfg.Allocator.DeallocateLeaf(l)
}

// leafUnderflow reports whether leaf's fill is below the minimum for its
// role (root leaves may hold any fill from 0 to Capacity).
func (t *Tree[T]) leafUnderflow(leaf *leafNode[T], isRoot bool) bool {
	if isRoot {
		return false
	}
	return leaf.fill < t.cfg.minLeafFill()
}
