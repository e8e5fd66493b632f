package array

import "fmt"

// concat_split.go implements C9 (spec.md §4.9): joining two trees into one
// and splitting one tree into two, both by grafting/detaching a whole
// subtree at the depth matching the shallower tree rather than by
// element-by-element transfer. Grounded on btree/tree.go's concatNodes/
// concatSameHeight (depth-matched graft) and splitNodePathCopy (depth-
// matched detach), reworked from path-copy into in-place mutation using
// rebalance.go's graftChildAt.
//
// splitSubtree's recursive descent mutates every branch along the split
// path, so (per spec.md §7/§9's reserve-before-mutate contract) it must not
// allocate while doing so: one fresh leaf and one fresh branch per branch
// level are reserved up front by reserveSplitAtDepth, exactly mirroring
// reserveSplitChain's role for an ordinary insert-triggered split.

// rightSpineAt walks steps branches down n's rightmost spine and returns
// the branch reached. n must be a branch with depth >= steps.
func rightSpineAt[T any](n node[T], steps int) *branchNode[T] {
	b := asBranch(n)
	for i := 0; i < steps; i++ {
		b = asBranch(b.children[b.fill-1])
	}
	return b
}

// leftSpineAt is rightSpineAt's mirror, walking the leftmost spine.
func leftSpineAt[T any](n node[T], steps int) *branchNode[T] {
	b := asBranch(n)
	for i := 0; i < steps; i++ {
		b = asBranch(b.children[0])
	}
	return b
}

// Concatenate appends other's elements after t's, consuming other (other is
// left empty). O(|depth(t) - depth(other)| ) beyond the cost of any one
// split/underflow propagation, per spec.md §4.9.
func (t *Tree[T]) Concatenate(other *Tree[T]) error {
	if other.count == 0 {
		return nil
	}
	if t.count == 0 {
		t.Swap(other)
		return nil
	}
	var grafted node[T]
	switch {
	case t.depth == other.depth:
		newRoot, err := t.cfg.Allocator.AllocateBranch(t.cfg.Degree)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
		}
		newRoot.fill = 2
		newRoot.children[0] = t.root
		newRoot.nums[0] = t.count
		newRoot.children[1] = other.root
		newRoot.nums[1] = other.count
		t.root.setParent(newRoot)
		other.root.setParent(newRoot)
		t.root = newRoot
		t.depth++
		// Both former roots are now ordinary children and must meet the
		// non-root minimum fill they were exempt from as a root. The left one
		// is checked first; if that merged the two children, newRoot has
		// collapsed into the merged node and there is no second child left
		// to check.
		t.checkDemoted(newRoot.children[0])
		if t.root == newRoot {
			t.checkDemoted(newRoot.children[1])
		}

	case t.depth > other.depth:
		steps := t.depth - other.depth - 1
		parent := rightSpineAt[T](t.root, steps)
		idx := parent.fill
		if err := t.graftChildAt(parent, idx, other.root); err != nil {
			return err
		}
		grafted = other.root

	default: // other.depth > t.depth
		steps := other.depth - t.depth - 1
		parent := leftSpineAt[T](other.root, steps)
		oldRoot, oldDepth := t.root, t.depth
		t.root, t.depth = other.root, other.depth
		if err := t.graftChildAt(parent, 0, oldRoot); err != nil {
			t.root, t.depth = oldRoot, oldDepth
			return err
		}
		grafted = oldRoot
	}

	if grafted != nil {
		// The grafted subtree was itself a previously-valid tree root; like
		// the equal-depth case above, it now needs the non-root minimum
		// fill check it was exempt from before this call.
		t.checkDemoted(grafted)
	}

	joinPos := t.count
	t.count += other.count
	t.deepSew(joinPos)
	other.root = nil
	other.depth = 0
	other.count = 0
	t.notify()
	return nil
}

// checkDemoted re-runs the ordinary non-root underflow check on a node that
// was until this call a tree's own root (and so was held only to the
// relaxed root minimum of spec.md §3 invariant 4) and has just become an
// ordinary child. underflowLeaf/underflowBranch recompute the check fresh
// against n's new parent, so this is exactly the same merge-or-balance path
// a normal erase-driven underflow would take.
func (t *Tree[T]) checkDemoted(n node[T]) {
	if n.isLeaf() {
		t.underflowLeaf(asLeaf(n))
	} else {
		t.underflowBranch(asBranch(n))
	}
}

// ConcatenateLeft prepends other's elements before t's, consuming other
// (other is left empty), per spec.md §4.9's note that the "prepend" variant
// is expressed as the mirror of Concatenate via a swap-around: after
// swapping contents, t holds other's elements and Concatenate appends t's
// former elements after them, leaving the result in t. On failure the swap
// is undone.
func (t *Tree[T]) ConcatenateLeft(other *Tree[T]) error {
	t.Swap(other)
	if err := t.Concatenate(other); err != nil {
		t.Swap(other)
		return err
	}
	return nil
}

// splitReserve holds every node a single full-depth split might create,
// drawn down as splitSubtree descends. Reserving the whole chain before any
// existing node is touched is what lets splitSubtree itself be infallible:
// spec.md §7's strong-exception-safety contract, same shape as
// reserveSplitChain/attachSplit in rebalance.go.
type splitReserve[T any] struct {
	leaf     *leafNode[T]
	leafUsed bool
	branches []*branchNode[T]
}

// reserveSplitAtDepth reserves one fresh leaf (the split may cut a leaf at
// most once per call) plus one fresh branch for every branch level of a
// subtree depth levels deep (the split path may need to detach a right
// fragment at every level it passes through). Some of these end up unused
// when the split point falls exactly on a child boundary; releaseSplitReserve
// frees whatever splitSubtree didn't draw on.
func (t *Tree[T]) reserveSplitAtDepth(depth int) (*splitReserve[T], error) {
	leaf, err := t.cfg.Allocator.AllocateLeaf(t.cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	branches, err := t.allocateChain(depth)
	if err != nil {
		t.cfg.Allocator.DeallocateLeaf(leaf)
		return nil, err
	}
	return &splitReserve[T]{leaf: leaf, branches: branches}, nil
}

func (r *splitReserve[T]) takeLeaf() *leafNode[T] {
	assert(!r.leafUsed, "splitReserve: leaf already consumed")
	r.leafUsed = true
	return r.leaf
}

func (r *splitReserve[T]) takeBranch() *branchNode[T] {
	assert(len(r.branches) > 0, "splitReserve: no reserved branch left")
	b := r.branches[0]
	r.branches = r.branches[1:]
	return b
}

func (t *Tree[T]) releaseSplitReserve(r *splitReserve[T]) {
	if !r.leafUsed {
		t.cfg.Allocator.DeallocateLeaf(r.leaf)
	}
	releaseChain(t, r.branches)
}

// splitSubtree splits the subtree rooted at n at local offset pos into a
// left part (n itself, mutated in place) and a right part, returning the
// right part's root node and its element count. The returned node is nil
// (with count 0) when pos lands at n's own end and there is nothing to its
// right — callers must treat a nil return as "nothing to attach", not as an
// empty node to graft in. Every node splitSubtree might need is drawn from
// r, reserved by the caller before descent began, so this walk never
// allocates and therefore never fails partway through a mutation.
func (t *Tree[T]) splitSubtree(n node[T], pos int, r *splitReserve[T]) (node[T], int) {
	if n.isLeaf() {
		leaf := asLeaf(n)
		cnt := leaf.fill - pos
		if cnt == 0 {
			return nil, 0
		}
		fresh := r.takeLeaf()
		t.cfg.Mover.MoveForward(fresh.elems[:cnt], leaf.elems[pos:leaf.fill], cnt)
		fresh.fill = cnt
		leaf.fill = pos
		return fresh, cnt
	}

	b := asBranch(n)
	i, rem := 0, pos
	for rem > b.nums[i] {
		rem -= b.nums[i]
		i++
	}

	// Children strictly after the split child move wholesale to the right;
	// the split child itself recurses, fully resolving before this level
	// mutates its own nums/fill, so a deeper level's result is always
	// known-good by the time it's folded in here.
	tailCount := b.fill - (i + 1)
	recurse := rem != b.nums[i]
	var rightChild node[T]
	var rightChildCount int
	if recurse {
		child := b.children[i]
		rightChild, rightChildCount = t.splitSubtree(child, rem, r)
	}

	if tailCount == 0 && rightChild == nil {
		b.fill = i + 1
		return nil, 0
	}

	rightBranch := r.takeBranch()
	total := 0
	w := 0
	if rightChild != nil {
		rightBranch.children[0] = rightChild
		rightBranch.nums[0] = rightChildCount
		rightChild.setParent(rightBranch)
		total += rightChildCount
		w = 1
	}
	if tailCount > 0 {
		total += t.moveChildren(rightBranch, w, b, i+1, tailCount)
		w += tailCount
	}
	rightBranch.fill = w
	for k := i + 1; k < b.fill; k++ {
		b.children[k] = nil
	}
	if recurse {
		b.nums[i] -= rightChildCount
	}
	b.fill = i + 1

	return rightBranch, total
}

// normalizeRoot collapses a chain of single-child branches at the top of
// the subtree rooted at *rootSlot down to its first node with fill != 1 (or
// a leaf), adjusting *depthSlot to match. Used after splitSubtree, since the
// kept/newly built half of a split commonly ends up with redundant
// single-child branches at the top.
func (t *Tree[T]) normalizeRoot(rootSlot *node[T], depthSlot *int) {
	for {
		n := *rootSlot
		if n == nil || n.isLeaf() {
			return
		}
		b := asBranch(n)
		if b.fill != 1 {
			return
		}
		child := b.children[0]
		child.setParent(nil)
		t.deleteBranch(b)
		*rootSlot = child
		*depthSlot--
	}
}

// SplitRight removes [pos, Len()) from t and returns it as a new tree,
// leaving t holding [0, pos). O(log N) beyond the split itself, per
// spec.md §4.9.
func (t *Tree[T]) SplitRight(pos int) (*Tree[T], error) {
	if pos < 0 || pos > t.count {
		return nil, ErrIndexOutOfBounds
	}
	out, err := New[T](t.cfg)
	if err != nil {
		return nil, err
	}
	if pos == t.count {
		return out, nil
	}
	if pos == 0 {
		out.Swap(t)
		return out, nil
	}

	r, err := t.reserveSplitAtDepth(t.depth)
	if err != nil {
		return nil, err
	}
	rightRoot, rightCount := t.splitSubtree(t.root, pos, r)
	t.releaseSplitReserve(r)
	rightRoot.setParent(nil)

	out.root = rightRoot
	out.depth = t.depth
	out.count = rightCount
	t.count = pos

	t.normalizeRoot(&t.root, &t.depth)
	out.normalizeRoot(&out.root, &out.depth)

	t.resweep(pos - 1)
	out.resweep(0)
	t.notify()
	return out, nil
}

// resweep repairs every node along the path from the root to the leaf
// holding pos: the topmost too-thin branch first, then the leaf once no
// branch on the path is thin. Going top down means the node being repaired
// always has a parent that is not itself thin, and so has a sibling to
// merge with or borrow from. splitSubtree truncates a branch's child array
// (or builds a fresh one) at every level along the split path without
// pairing each truncation with an immediate underflow check the way
// deleteSlot's ordinary call sites do (see branch_ops.go), and a bulk erase
// can do the same, so a plain leaf-triggered cascade can miss a thin
// ancestor whose own child itself is not thin. resweep re-descends from
// scratch after every fix, since a merge at one level can change what lies
// below and above it; it terminates because each fix strictly reduces the
// number of still-too-thin nodes on the path.
func (t *Tree[T]) resweep(pos int) {
	if t.root == nil || t.count == 0 {
		t.clear()
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= t.count {
		pos = t.count - 1
	}
	for {
		var path []*branchNode[T]
		n := t.root
		p := pos
		for !n.isLeaf() {
			b := asBranch(n)
			path = append(path, b)
			k := 0
			for k < b.fill-1 && p >= b.nums[k] {
				p -= b.nums[k]
				k++
			}
			n = b.children[k]
		}
		leaf := asLeaf(n)
		fixed := false
		for _, b := range path {
			if t.innerUnderflow(b, b.parent == nil) {
				t.underflowBranch(b)
				fixed = true
				break
			}
		}
		if fixed {
			continue
		}
		if leaf.parent != nil && t.leafUnderflow(leaf, false) {
			t.underflowLeaf(leaf)
			continue
		}
		return
	}
}

// SplitLeft removes [0, pos) from t and returns it as a new tree, leaving t
// holding [pos, Len()). Expressed, per spec.md §4.9, as the mirror of
// SplitRight via the same swap-around trick ConcatenateLeft uses.
func (t *Tree[T]) SplitLeft(pos int) (*Tree[T], error) {
	right, err := t.SplitRight(pos)
	if err != nil {
		return nil, err
	}
	t.Swap(right)
	return right, nil
}
