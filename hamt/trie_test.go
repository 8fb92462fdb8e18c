package hamt

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacite/dacite/hash"
)

func TestTrieIterAscendingOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	trie := Empty[hash.H]()
	var keys []hash.H
	for i := 0; i < 500; i++ {
		var h hash.H
		r.Read(h[:])
		keys = append(keys, h)
		var err error
		trie, err = trie.Insert(h, h)
		require.NoError(t, err)
	}

	got := trie.Iter()
	require.Len(t, got, 500)

	want := append([]hash.H{}, keys...)
	sort.Slice(want, func(i, j int) bool {
		for k := 0; k < hash.Size; k++ {
			if want[i][k] != want[j][k] {
				return want[i][k] < want[j][k]
			}
		}
		return false
	})
	require.Equal(t, want, got)
}

func TestTrieInsertDuplicateKeyReplaces(t *testing.T) {
	var k hash.H
	k[0] = 0xAB

	trie := Empty[int]()
	trie, err := trie.Insert(k, 1)
	require.NoError(t, err)
	trie, err = trie.Insert(k, 2)
	require.NoError(t, err)

	got := trie.Iter()
	require.Equal(t, []int{2}, got)
}

func TestTrieEmpty(t *testing.T) {
	trie := Empty[int]()
	require.Empty(t, trie.Iter())
	require.Equal(t, 0, trie.Len())
}

func TestIndexBoundaries(t *testing.T) {
	_, err := Index(0, 0, 0, 0, -1)
	require.ErrorIs(t, err, ErrExhausted)

	_, err = Index(0, 0, 0, 0, MaxDepth)
	require.ErrorIs(t, err, ErrExhausted)

	idx, err := Index(0xFFFFFFFFFFFFFFFF, 0, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0x1F), idx)
}
