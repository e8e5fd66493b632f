package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmptyTree(t *testing.T) {
	tr, err := New[int](smallConfig())
	require.NoError(t, err)
	assert.NoError(t, tr.Check())
}

func TestCheckAfterManyMutations(t *testing.T) {
	tr, err := New[int](smallConfig())
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		require.NoError(t, tr.PushBack(i))
		if i%7 == 0 && tr.Len() > 5 {
			require.NoError(t, tr.EraseAt(tr.Len()/2))
		}
		require.NoError(t, tr.Check())
	}
}

func TestCheckDetectsCountMismatch(t *testing.T) {
	tr := buildRange(t, 40)
	if tr.root.isLeaf() {
		t.Skip("root is a single leaf at this size, nothing to corrupt")
	}
	// Corrupt a branch slot's stored count directly to confirm Check notices.
	b := asBranch(tr.root)
	b.nums[0]++
	assert.Error(t, tr.Check())
}
