package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSliceAtEveryPosition(t *testing.T) {
	// OQ1 (spec.md §9): insertion at position 0 is not given any special
	// casing anywhere in insert_erase.go/bulk_insert.go — descend's walk
	// already handles p==0 uniformly. This sweeps every insertion point,
	// including 0 and Len(), to confirm that holds in practice.
	for n := 0; n <= 12; n++ {
		for pos := 0; pos <= n; pos++ {
			tr, err := New[int](smallConfig())
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				require.NoError(t, tr.PushBack(i))
			}
			require.NoError(t, tr.InsertSlice(pos, -1, -2))
			require.NoErrorf(t, tr.Check(), "n=%d pos=%d", n, pos)
			assert.Equal(t, n+2, tr.Len())
			got := collect(t, tr)
			assert.Equal(t, -1, got[pos])
			assert.Equal(t, -2, got[pos+1])
		}
	}
}

func TestInsertSliceStreamsWholeLeavesForLargeInput(t *testing.T) {
	// smallConfig's Capacity is 4, so an input bigger than that trips
	// InsertCursor's SizedCursor classification into insertWholeLeaves
	// instead of the element-at-a-time loop.
	for _, pos := range []int{0, 1, 7, 20} {
		tr := buildRange(t, 20)
		items := make([]int, 50)
		for i := range items {
			items[i] = 1000 + i
		}
		require.NoError(t, tr.InsertSlice(pos, items...))
		require.NoErrorf(t, tr.Check(), "pos=%d", pos)
		assert.Equal(t, 70, tr.Len())
		got := collect(t, tr)
		for i, v := range items {
			assert.Equal(t, v, got[pos+i])
		}
		for i := 0; i < pos; i++ {
			assert.Equal(t, i, got[i])
		}
		for i := pos; i < 20; i++ {
			assert.Equal(t, i, got[i+len(items)])
		}
	}
}

func TestFillStreamsWholeLeavesForLargeCount(t *testing.T) {
	tr := buildRange(t, 10)
	require.NoError(t, tr.Fill(5, 40, 77))
	require.NoError(t, tr.Check())
	got := collect(t, tr)
	assert.Equal(t, 50, len(got))
	for i := 5; i < 45; i++ {
		assert.Equal(t, 77, got[i])
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got[:5])
	assert.Equal(t, []int{5, 6, 7, 8, 9}, got[45:])
}

func TestFillInsertsRepeatedValue(t *testing.T) {
	tr := buildRange(t, 10)
	require.NoError(t, tr.Fill(5, 4, 77))
	require.NoError(t, tr.Check())
	got := collect(t, tr)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 77, 77, 77, 77, 5, 6, 7, 8, 9}, got)
}

func TestNewFillConstructsUniformSequence(t *testing.T) {
	tr, err := NewFill(smallConfig(), 25, 3)
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	for i := 0; i < tr.Len(); i++ {
		v, err := tr.At(i)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	}
}

func TestNewFromSliceRoundTrips(t *testing.T) {
	src := []int{5, 4, 3, 2, 1, 0}
	tr, err := NewFromSlice(smallConfig(), src)
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	assert.Equal(t, src, collect(t, tr))
}

func TestAssignReplacesContents(t *testing.T) {
	tr := buildRange(t, 20)
	require.NoError(t, tr.Assign(SliceCursor([]int{1, 2, 3})))
	require.NoError(t, tr.Check())
	assert.Equal(t, []int{1, 2, 3}, collect(t, tr))
}
