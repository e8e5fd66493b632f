package array

// branch_ops.go implements C3 (spec.md §4.3): child-array shifts,
// move-children-between-branches, sibling merge/balance at the branch
// level. Grounded on btree/mutation_helpers.go's insertChildAt/
// removeChildAt and btree/tree.go's rebalanceInnerChild, reworked in-place
// with parent back-pointer maintenance (the teacher's persistent nodes
// carry no parent pointer at all, since every mutation rebuilds the path).

// insertSlot shifts b.children[i:fill)/b.nums[i:fill) right by one and
// places child (with its subtree count) into slot i, rebinding the
// child's parent pointer. The caller must ensure b.fill+1 does not exceed
// Degree+1 (the headroom slot, see allocator.go); attachSplit and
// graftChildAt split the branch afterwards when fill exceeds Degree.
func (t *Tree[T]) insertSlot(b *branchNode[T], i int, child node[T], count int) {
	if i < b.fill {
		copy(b.children[i+1:b.fill+1], b.children[i:b.fill])
		copy(b.nums[i+1:b.fill+1], b.nums[i:b.fill])
	}
	b.children[i] = child
	b.nums[i] = count
	child.setParent(b)
	b.fill++
}

// insertChildAt is an alias kept for symmetry with deleteSlot and to read
// naturally at call sites that add exactly one child.
func (t *Tree[T]) insertChildAt(b *branchNode[T], i int, child node[T]) {
	t.insertSlot(b, i, child, subtreeCount[T](child))
}

// deleteSlot removes n consecutive child/nums entries starting at i,
// shifting the remainder left. It does not deallocate the removed
// children; callers that are discarding (not relocating) a child must do
// so themselves (see deleteLeaf / deleteBranch).
func (t *Tree[T]) deleteSlot(b *branchNode[T], i, n int) {
	tail := b.fill - (i + n)
	if tail > 0 {
		copy(b.children[i:i+tail], b.children[i+n:b.fill])
		copy(b.nums[i:i+tail], b.nums[i+n:b.fill])
	}
	for k := b.fill - n; k < b.fill; k++ {
		b.children[k] = nil
	}
	b.fill -= n
}

// moveChildren relocates n children (and their nums) from src[isrc:isrc+n)
// to dst[idst:idst+n), rebinding each moved child's parent to dst. Returns
// the total element count transferred. dst must have room for n more
// children at idst (the caller grows dst.fill).
func (t *Tree[T]) moveChildren(dst *branchNode[T], idst int, src *branchNode[T], isrc, n int) int {
	total := 0
	for k := 0; k < n; k++ {
		child := src.children[isrc+k]
		cnt := src.nums[isrc+k]
		dst.children[idst+k] = child
		dst.nums[idst+k] = cnt
		child.setParent(dst)
		total += cnt
	}
	return total
}

func (t *Tree[T]) deleteBranch(b *branchNode[T]) {
	t.cfg.Allocator.DeallocateBranch(b)
}

// tryMergeBranches attempts to fold b.children[i+1] (a branch) into
// b.children[i] (a branch) when their combined child count fits in one
// branch's Degree. Returns false, leaving both untouched, if it does not
// fit.
func (t *Tree[T]) tryMergeBranches(b *branchNode[T], i int) bool {
	left := asBranch(b.children[i])
	right := asBranch(b.children[i+1])
	if left.fill+right.fill > t.cfg.Degree {
		return false
	}
	t.moveChildren(left, left.fill, right, 0, right.fill)
	left.fill += right.fill
	b.nums[i] += b.nums[i+1]
	t.deleteBranch(right)
	t.deleteSlot(b, i+1, 1)
	return true
}

// balanceBranches moves children from the fatter of two sibling branches
// into the thinner one so both end at (roughly) the average, analogous to
// balanceLeaves but at branch granularity (spec.md §4.3).
func (t *Tree[T]) balanceBranches(b *branchNode[T], i int) {
	left := asBranch(b.children[i])
	right := asBranch(b.children[i+1])
	total := left.fill + right.fill
	target := total / 2
	if left.fill > target {
		moves := left.fill - target
		// Make room at right's head, then move left's tail into it.
		copy(right.children[moves:moves+right.fill], right.children[:right.fill])
		copy(right.nums[moves:moves+right.fill], right.nums[:right.fill])
		t.moveChildren(right, 0, left, left.fill-moves, moves)
		right.fill += moves
		left.fill -= moves
		for k := left.fill; k < left.fill+moves; k++ {
			left.children[k] = nil
		}
	} else if right.fill > target {
		moves := right.fill - target
		t.moveChildren(left, left.fill, right, 0, moves)
		left.fill += moves
		tail := right.fill - moves
		if tail > 0 {
			copy(right.children[:tail], right.children[moves:moves+tail])
			copy(right.nums[:tail], right.nums[moves:moves+tail])
		}
		for k := tail; k < right.fill; k++ {
			right.children[k] = nil
		}
		right.fill -= moves
	}
	b.nums[i] = subtreeCount[T](left)
	b.nums[i+1] = subtreeCount[T](right)
}

// innerUnderflow reports whether branch's fill is below the minimum for
// its role. Non-root branches must hold fill >= Degree/2; the root branch
// may hold as few as 2 (spec.md §3 invariant 4).
func (t *Tree[T]) innerUnderflow(b *branchNode[T], isRoot bool) bool {
	if isRoot {
		return b.fill < 2
	}
	return b.fill < t.cfg.minBranchFill()
}
