package array

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchFailAllocator wraps DefaultAllocator and fails the call-th call to
// AllocateBranch, mirroring mover_test.go's cell/Clone failure pattern but
// for node allocation instead of element copying — used to exercise
// splitSubtree's reserve-before-mutate path (spec.md §7).
type branchFailAllocator[T any] struct {
	DefaultAllocator[T]
	calls  *int
	failAt int
}

func (a branchFailAllocator[T]) AllocateBranch(degree int) (*branchNode[T], error) {
	*a.calls++
	if *a.calls == a.failAt {
		return nil, errInjectedAlloc
	}
	return a.DefaultAllocator.AllocateBranch(degree)
}

var errInjectedAlloc = errors.New("injected allocation failure")

func TestSplitRightRollsBackOnAllocationFailure(t *testing.T) {
	tr := buildRange(t, 200)
	require.NoError(t, tr.Check())
	require.Greater(t, tr.depth, 1, "need a tree deep enough that the split chain spans more than one branch level")

	before := collect(t, tr)

	calls := 0
	tr.cfg.Allocator = branchFailAllocator[int]{calls: &calls, failAt: 1}

	_, err := tr.SplitRight(100)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAllocationFailed)

	require.NoError(t, tr.Check())
	assert.Equal(t, before, collect(t, tr))
	assert.Equal(t, 200, tr.Len())
}

func TestSplitLeftRollsBackOnAllocationFailure(t *testing.T) {
	tr := buildRange(t, 200)
	require.NoError(t, tr.Check())
	require.Greater(t, tr.depth, 1, "need a tree deep enough that the split chain spans more than one branch level")

	before := collect(t, tr)

	calls := 0
	tr.cfg.Allocator = branchFailAllocator[int]{calls: &calls, failAt: 1}

	_, err := tr.SplitLeft(100)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAllocationFailed)

	require.NoError(t, tr.Check())
	assert.Equal(t, before, collect(t, tr))
	assert.Equal(t, 200, tr.Len())
}

func TestConcatenateRollsBackOnAllocationFailure(t *testing.T) {
	a := buildRange(t, 200)
	require.NoError(t, a.Check())
	b, err := New[int](smallConfig())
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		require.NoError(t, b.PushBack(1000+i))
	}
	require.NoError(t, b.Check())
	require.Equal(t, a.depth, b.depth, "equal-depth path exercises the new-root branch allocation")

	beforeA := collect(t, a)
	beforeB := collect(t, b)

	calls := 0
	a.cfg.Allocator = branchFailAllocator[int]{calls: &calls, failAt: 1}

	err = a.Concatenate(b)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAllocationFailed)

	require.NoError(t, a.Check())
	assert.Equal(t, beforeA, collect(t, a))
	assert.Equal(t, beforeB, collect(t, b))
}

func TestConcatenateUnequalDepths(t *testing.T) {
	big := buildRange(t, 300) // deep
	small, err := New[int](smallConfig())
	require.NoError(t, err)
	require.NoError(t, small.PushBack(-1)) // single leaf, depth 0

	require.NoError(t, big.Concatenate(small))
	require.NoError(t, big.Check())
	assert.Equal(t, 301, big.Len())
	got := collect(t, big)
	assert.Equal(t, -1, got[300])
}

func TestConcatenateLeftPrepends(t *testing.T) {
	small, err := New[int](smallConfig())
	require.NoError(t, err)
	require.NoError(t, small.PushBack(-1))
	big := buildRange(t, 50)

	require.NoError(t, big.ConcatenateLeft(small))
	require.NoError(t, big.Check())
	got := collect(t, big)
	assert.Equal(t, -1, got[0])
	assert.Equal(t, 0, got[1])
}

func TestSplitLeftAndRightAtBoundaries(t *testing.T) {
	tr := buildRange(t, 40)
	head, err := tr.SplitRight(0)
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.NoError(t, head.Check())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 40, head.Len())

	tail, err := head.SplitRight(head.Len())
	require.NoError(t, err)
	require.NoError(t, head.Check())
	require.NoError(t, tail.Check())
	assert.Equal(t, 40, head.Len())
	assert.Equal(t, 0, tail.Len())
}

func TestSplitLeftLeavesTailInReceiver(t *testing.T) {
	tr := buildRange(t, 60)
	headOut, err := tr.SplitLeft(25)
	require.NoError(t, err)
	require.NoError(t, tr.Check())
	require.NoError(t, headOut.Check())
	assert.Equal(t, 35, tr.Len())
	assert.Equal(t, 25, headOut.Len())
	assert.Equal(t, 25, collect(t, tr)[0])
	assert.Equal(t, 0, collect(t, headOut)[0])
}

func TestSplitThenConcatenateRoundTrips(t *testing.T) {
	for _, pos := range []int{0, 1, 17, 49, 50} {
		tr := buildRange(t, 50)
		right, err := tr.SplitRight(pos)
		require.NoErrorf(t, err, "pos=%d", pos)
		require.NoError(t, tr.Check())
		require.NoError(t, right.Check())
		require.NoError(t, tr.Concatenate(right))
		require.NoError(t, tr.Check())
		assert.Equal(t, 50, tr.Len())
		got := collect(t, tr)
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	}
}
