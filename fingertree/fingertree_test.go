package fingertree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBackPreservesOrder(t *testing.T) {
	tr := Empty[int]()
	for i := 0; i < 100; i++ {
		tr = tr.PushBack(i)
	}
	got := tr.Iter()
	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestPushFrontReversesOrder(t *testing.T) {
	tr := Empty[int]()
	for i := 0; i < 10; i++ {
		tr = tr.PushFront(i)
	}
	got := tr.Iter()
	for i, v := range got {
		require.Equal(t, 9-i, v)
	}
}

func TestPopFrontUnwindsInOrder(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5})
	var out []int
	for {
		v, rest, ok := tr.PopFront()
		if !ok {
			break
		}
		out = append(out, v)
		tr = rest
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, out)
}

func TestPopBackUnwindsInReverseOrder(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5})
	var out []int
	for {
		v, rest, ok := tr.PopBack()
		if !ok {
			break
		}
		out = append(out, v)
		tr = rest
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, out)
}

func TestConcatPreservesOrder(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5, 6})
	got := Concat(a, b).Iter()
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestConcatLargeTrees(t *testing.T) {
	var left, right []int
	for i := 0; i < 50; i++ {
		left = append(left, i)
	}
	for i := 50; i < 120; i++ {
		right = append(right, i)
	}
	got := Concat(FromSlice(left), FromSlice(right)).Iter()
	require.Len(t, got, 120)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestSplit(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5, 6})
	left, right := tr.Split(3)
	require.Equal(t, []int{1, 2, 3}, left.Iter())
	require.Equal(t, []int{4, 5, 6}, right.Iter())
}

func TestEmptyTree(t *testing.T) {
	tr := Empty[int]()
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	_, _, ok := tr.PopFront()
	require.False(t, ok)
}
