package dyn

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errCloneFailed = errors.New("clone failed")

// cloneTrace is shared by every element of a fixture array and makes the
// n-th duplication fail.
type cloneTrace struct {
	calls  int
	failAt int // failing call number, 0 means never
}

type tracked struct {
	id int
	tr *cloneTrace
}

func (v tracked) Clone() (tracked, error) {
	v.tr.calls++
	if v.tr.failAt != 0 && v.tr.calls == v.tr.failAt {
		return tracked{}, errCloneFailed
	}
	return tracked{id: v.id, tr: v.tr}, nil
}

func newTracked(n int, tr *cloneTrace) *Array[tracked] {
	a := New[tracked]()
	for i := 0; i < n; i++ {
		a.PushBack(tracked{id: i, tr: tr})
	}
	return a
}

func ids(a *Array[tracked]) []int {
	out := make([]int, 0, a.Len())
	for v := range a.Values() {
		out = append(out, v.id)
	}
	return out
}

func TestCloneableCapabilityCheck(t *testing.T) {
	require.True(t, cloneable[tracked]())
	require.False(t, cloneable[int]())
	require.False(t, cloneable[*tracked]()) // Clone is declared on the value
}

func TestCloneCallsElementClone(t *testing.T) {
	tr := &cloneTrace{}
	a := newTracked(3, tr)

	dup, err := a.Clone()
	require.NoError(t, err)
	require.Equal(t, 3, tr.calls)
	require.Equal(t, []int{0, 1, 2}, ids(dup))
}

func TestCloneStrongGuarantee(t *testing.T) {
	tr := &cloneTrace{failAt: 3}
	a := newTracked(4, tr)
	capBefore := a.Cap()

	dup, err := a.Clone()
	require.ErrorIs(t, err, errCloneFailed)
	require.Nil(t, dup)
	require.Equal(t, 4, a.Len())
	require.Equal(t, capBefore, a.Cap())
	require.Equal(t, []int{0, 1, 2, 3}, ids(a))
}

func TestCopyFromSwapBranchStrongGuarantee(t *testing.T) {
	tr := &cloneTrace{failAt: 2}
	src := newTracked(3, tr)

	dst := New[tracked]()
	dst.PushBack(tracked{id: 100, tr: tr})
	require.Less(t, dst.Cap(), src.Len()) // forces the duplicate-then-swap branch

	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, errCloneFailed)
	require.Equal(t, []int{100}, ids(dst))
	require.Equal(t, []int{0, 1, 2}, ids(src))
}

func TestCopyFromExtendPartialState(t *testing.T) {
	srcTr := &cloneTrace{failAt: 3}
	src := newTracked(3, srcTr)

	dst := New[tracked]()
	dst.Reserve(4)
	dst.PushBack(tracked{id: 100, tr: srcTr})

	// Call 1 duplicates the common prefix, call 2 constructs index 1,
	// call 3 fails while constructing index 2.
	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, errCloneFailed)
	require.Equal(t, 2, dst.Len())
	require.Equal(t, []int{0, 1}, ids(dst))
}

func TestCopyFromReuseDuplicatesDeep(t *testing.T) {
	tr := &cloneTrace{}
	src := newTracked(2, tr)
	dst := New[tracked]()
	dst.Reserve(2)

	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, 2, tr.calls)
	require.Equal(t, []int{0, 1}, ids(dst))
}
