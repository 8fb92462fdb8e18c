package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacite/dacite/hash"
)

func TestMemoryPutGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	h := hash.Sum([]byte("hello"))

	require.NoError(t, m.Put(ctx, h, []byte("hello")))
	got, err := m.Get(ctx, h)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestMemoryGetMissingReturnsErrNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.Get(ctx, hash.Sum([]byte("nope")))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPutCopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	h := hash.Sum([]byte("mutate me"))
	data := []byte("mutate me")
	require.NoError(t, m.Put(ctx, h, data))
	data[0] = 'X'

	got, err := m.Get(ctx, h)
	require.NoError(t, err)
	require.Equal(t, []byte("mutate me"), got)
}

func TestAddrRoundtrip(t *testing.T) {
	h := hash.Sum([]byte("content address me"))
	c, err := Addr(h)
	require.NoError(t, err)
	require.NotEmpty(t, c.String())

	got, err := ParseAddr(c)
	require.NoError(t, err)
	require.Equal(t, h, got)
}
