package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config[int] {
	return Config[int]{Degree: 4, Capacity: 4}
}

func buildRange(t *testing.T, n int) *Tree[int] {
	t.Helper()
	tr, err := New[int](smallConfig())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, tr.PushBack(i))
	}
	return tr
}

func collect(t *testing.T, tr *Tree[int]) []int {
	t.Helper()
	out := make([]int, tr.Len())
	for i := range out {
		v, err := tr.At(i)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestPushBackBuildsOrderedSequence(t *testing.T) {
	tr := buildRange(t, 20)
	require.NoError(t, tr.Check())
	assert.Equal(t, 20, tr.Len())
	for i := 0; i < 20; i++ {
		got := collect(t, tr)
		assert.Equal(t, i, got[i])
	}
}

func TestPushFrontBuildsReversedSequence(t *testing.T) {
	tr, err := New[int](smallConfig())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, tr.PushFront(i))
	}
	require.NoError(t, tr.Check())
	got := collect(t, tr)
	for i, v := range got {
		assert.Equal(t, 19-i, v)
	}
}

func TestEraseRange(t *testing.T) {
	tr := buildRange(t, 100)
	require.NoError(t, tr.Erase(40, 60))
	require.NoError(t, tr.Check())
	require.Equal(t, 80, tr.Len())
	got := collect(t, tr)
	for i := 0; i < 40; i++ {
		assert.Equal(t, i, got[i])
	}
	for i := 40; i < 80; i++ {
		assert.Equal(t, i+20, got[i])
	}
}

func TestEraseWholeTree(t *testing.T) {
	tr := buildRange(t, 50)
	require.NoError(t, tr.Erase(0, 50))
	require.NoError(t, tr.Check())
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Empty())
}

func TestConcatenateThenSplitIsInverse(t *testing.T) {
	left := buildRange(t, 50)
	right, err := New[int](smallConfig())
	require.NoError(t, err)
	for i := 50; i < 100; i++ {
		require.NoError(t, right.PushBack(i))
	}

	require.NoError(t, left.Concatenate(right))
	require.NoError(t, left.Check())
	require.Equal(t, 100, left.Len())
	require.Equal(t, 0, right.Len())

	got := collect(t, left)
	for i, v := range got {
		assert.Equal(t, i, v)
	}

	tail, err := left.SplitRight(50)
	require.NoError(t, err)
	require.NoError(t, left.Check())
	require.NoError(t, tail.Check())
	assert.Equal(t, 50, left.Len())
	assert.Equal(t, 50, tail.Len())

	leftGot := collect(t, left)
	tailGot := collect(t, tail)
	for i := 0; i < 50; i++ {
		assert.Equal(t, i, leftGot[i])
		assert.Equal(t, i+50, tailGot[i])
	}
}

func TestBulkInsertAtPosition(t *testing.T) {
	tr := buildRange(t, 10)
	require.NoError(t, tr.InsertSlice(3, 100, 101, 102))
	require.NoError(t, tr.Check())
	require.Equal(t, 13, tr.Len())
	got := collect(t, tr)
	assert.Equal(t, []int{0, 1, 2, 100, 101, 102, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestVisitFindsElement(t *testing.T) {
	tr := buildRange(t, 10000)
	pos, err := tr.Visit(0, tr.Len(), func(v *int) bool { return *v == 7777 })
	require.NoError(t, err)
	assert.Equal(t, 7777, pos)
}

func TestVisitNoMatch(t *testing.T) {
	tr := buildRange(t, 10)
	pos, err := tr.Visit(0, tr.Len(), func(v *int) bool { return *v == -1 })
	require.NoError(t, err)
	assert.Equal(t, tr.Len(), pos)
}

func TestCloneIsIndependent(t *testing.T) {
	tr := buildRange(t, 30)
	clone, err := tr.Clone()
	require.NoError(t, err)
	require.NoError(t, clone.Set(0, -1))
	orig := collect(t, tr)
	cloned := collect(t, clone)
	assert.Equal(t, 0, orig[0])
	assert.Equal(t, -1, cloned[0])
}

func TestResizeGrowsAndShrinks(t *testing.T) {
	tr := buildRange(t, 10)
	require.NoError(t, tr.Resize(15, -1))
	require.NoError(t, tr.Check())
	got := collect(t, tr)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, -1, -1, -1, -1, -1}, got)

	require.NoError(t, tr.Resize(5, 0))
	require.NoError(t, tr.Check())
	assert.Equal(t, 5, tr.Len())
}
