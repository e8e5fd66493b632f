package array

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/xlab/treeprint"
)

// dump.go provides diagnostic rendering of a tree's structure, grounded on
// SPEC_FULL.md §3/§4's ambient-stack entries for github.com/fatih/color
// (used throughout the retrieval pack for colorized CLI/log output) and
// github.com/xlab/treeprint (box-drawing tree rendering). Neither
// participates in the container's core semantics; both exist purely to make
// DumpTree/DumpString useful when eyeballing a tree during development or
// from the cmd demo.

var (
	branchLabel = color.New(color.FgCyan).SprintFunc()
	leafLabel   = color.New(color.FgYellow).SprintFunc()
	countLabel  = color.New(color.FgGreen).SprintFunc()
)

// DumpTree renders the tree's structure as a box-drawing diagram: one line
// per branch showing its per-child counts, and one line per leaf showing
// its live elements via fmt's %v.
func (t *Tree[T]) DumpTree() string {
	root := treeprint.New()
	root.SetValue(fmt.Sprintf("tree(len=%s, depth=%d)", countLabel(t.count), t.depth))
	if t.root != nil {
		t.dumpNode(root, t.root)
	}
	return root.String()
}

func (t *Tree[T]) dumpNode(parent treeprint.Tree, n node[T]) {
	if n.isLeaf() {
		leaf := asLeaf(n)
		parent.AddNode(fmt.Sprintf("%s %v", leafLabel("leaf"), leaf.elems[:leaf.fill]))
		return
	}
	b := asBranch(n)
	branch := parent.AddBranch(fmt.Sprintf("%s fill=%d", branchLabel("branch"), b.fill))
	for i := 0; i < b.fill; i++ {
		child := branch.AddBranch(fmt.Sprintf("slot %d (n=%d)", i, b.nums[i]))
		t.dumpNode(child, b.children[i])
	}
}

// DumpString renders a single-line, color-coded summary of the tree's shape
// without descending into element contents: useful for quickly eyeballing
// balance across a long-running mutation sequence.
func (t *Tree[T]) DumpString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s len=%s depth=%d ", branchLabel("array.Tree"), countLabel(t.count), t.depth)
	if t.root == nil {
		sb.WriteString("(empty)")
		return sb.String()
	}
	t.shapeOf(&sb, t.root)
	return sb.String()
}

func (t *Tree[T]) shapeOf(sb *strings.Builder, n node[T]) {
	if n.isLeaf() {
		fmt.Fprintf(sb, "%s(%d)", leafLabel("L"), asLeaf(n).fill)
		return
	}
	b := asBranch(n)
	sb.WriteString("[")
	for i := 0; i < b.fill; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		t.shapeOf(sb, b.children[i])
	}
	sb.WriteString("]")
}
