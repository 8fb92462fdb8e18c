package fuse

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacite/dacite/hash"
)

func randHash(r *rand.Rand) hash.H {
	var h hash.H
	r.Read(h[:])
	return h
}

func TestFuseDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a, b := randHash(r), randHash(r)

	h1, err1 := Fuse(a, b)
	h2, err2 := Fuse(a, b)
	require.Equal(t, err1, err2)
	require.Equal(t, h1, h2)
}

func TestFuseAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 512; i++ {
		a, b, c := randHash(r), randHash(r), randHash(r)

		left := FuseUnchecked(FuseUnchecked(a, b), c)
		right := FuseUnchecked(a, FuseUnchecked(b, c))
		require.Equal(t, left, right, "fuse(fuse(a,b),c) must equal fuse(a,fuse(b,c)) exactly under wrapping arithmetic")
	}
}

func TestFuseNonCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	distinct := 0
	for i := 0; i < 256; i++ {
		a, b := randHash(r), randHash(r)
		if a == b {
			continue
		}
		distinct++
		require.NotEqual(t, FuseUnchecked(a, b), FuseUnchecked(b, a))
	}
	require.Greater(t, distinct, 0)
}

func TestFuseNonIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 256; i++ {
		a, b := randHash(r), randHash(r)
		out := FuseUnchecked(a, b)
		require.NotEqual(t, out, a)
		require.NotEqual(t, out, b)
	}
}

func TestLowEntropyPredicate(t *testing.T) {
	// S3: four words each with zero low 32 bits.
	degenerate := hash.FromWords(
		0x1234567800000000,
		0xABCDEF0000000000,
		0x9876543200000000,
		0xFEDCBA9800000000,
	)
	require.True(t, LowEntropy(degenerate))

	normal := hash.Sum([]byte("normal data"))
	require.False(t, LowEntropy(normal))
}

func TestFuseRejectsLowEntropy(t *testing.T) {
	degenerate := hash.FromWords(
		0x1234567800000000,
		0xABCDEF0000000000,
		0x9876543200000000,
		0xFEDCBA9800000000,
	)
	zero := hash.H{}

	// fuse_unchecked(degenerate, zero) leaves every word's low 32 bits
	// untouched by a zero addend, so it stays degenerate and Fuse must
	// reject it.
	_, err := Fuse(degenerate, zero)
	require.ErrorIs(t, err, ErrLowEntropy)
}

func TestFuseScenarioS1(t *testing.T) {
	a := hash.Sum([]byte("hello"))
	b := hash.Sum([]byte("world"))

	h1, err := Fuse(a, b)
	require.NoError(t, err)
	h2, err := Fuse(a, b)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestFuseScenarioS2(t *testing.T) {
	one := hash.Sum([]byte("one"))
	two := hash.Sum([]byte("two"))
	three := hash.Sum([]byte("three"))

	left := FuseUnchecked(FuseUnchecked(one, two), three)
	right := FuseUnchecked(one, FuseUnchecked(two, three))
	require.Equal(t, left, right)
}
