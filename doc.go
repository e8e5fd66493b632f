/*
Package array implements Tree, a counted B+-tree sequence container.

A Tree behaves like a vector: it is ordered, random-access, and holds
homogeneous elements. Unlike a flat slice, inserting or erasing at an
arbitrary position runs in O(log N), not O(N), because the sequence is
represented as a counted B+-tree: a shallow, wide, balanced tree whose
leaves hold contiguous runs of elements and whose branches carry per-child
subtree-size counters. A positional index is located by descending the
tree and subtracting subtree counts as it goes, with no separate search
key required.

The tree is exception safe: if a node allocation or an element copy fails
partway through a mutation, the container is left exactly as it was before
the call. This is achieved by reserving every branch a split might need
before any existing node is restructured (reserveSplitChain), by undoing
an element write whose follow-up split cannot be reserved, and by undoing
subtree-count biasing on the failure path of descent.

Typical usage:

	t, _ := array.New[int](array.Config[int]{})
	_ = t.PushBack(1)
	_ = t.PushBack(2)
	_ = t.Insert(1, 42)
	v, _ := t.At(1) // 42

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package array

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
