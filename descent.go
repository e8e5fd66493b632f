package array

// descend locates the leaf (and offset within it) holding global position
// p, per spec.md §4.4 (C4). p may equal the tree's count (the append
// position), which lands one past the last element of the rightmost leaf.
// If depthLimit > 0, descent stops early at that depth instead of always
// reaching a leaf; no caller in this package passes a non-zero depthLimit
// (Concatenate and SplitRight walk the tree with rightSpineAt/leftSpineAt
// and splitSubtree instead).
//
// If delta != 0, every branch's nums slot visited on the way down is
// biased by delta before continuing, folding "update subtree counts after
// insert/erase" into the same walk that locates the position (spec.md §9
// "Subtree counts as the key"). A caller that must roll back after a
// failure further down the tree undoes this by calling descend again with
// -delta along the same path (spec.md §4.4's last paragraph); because the
// walk is deterministic in p, re-running it with the original p reproduces
// the same path.
func descend[T any](root node[T], p int, delta int, depthLimit int) (target node[T], offset int, depthReached int) {
	n := root
	d := 0
	for {
		if n.isLeaf() {
			return n, p, d
		}
		if depthLimit > 0 && d >= depthLimit {
			return n, p, d
		}
		b := asBranch(n)
		k := 0
		for k < b.fill-1 && p >= b.nums[k] {
			p -= b.nums[k]
			k++
		}
		if delta != 0 {
			b.nums[k] += delta
		}
		n = b.children[k]
		d++
	}
}

// undoBias reverses the nums-slot bias descend applied along the path to
// position p at the given delta, by repeating the same walk with -delta.
// Used on the rollback path of a failed single-element insert/erase
// (spec.md §4.4, §7).
func undoBias[T any](root node[T], p int, delta int) {
	descend[T](root, p, -delta, 0)
}
