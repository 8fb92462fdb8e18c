package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioS6DistinctNumericTypes(t *testing.T) {
	h32, err := Int32(0).Hash()
	require.NoError(t, err)
	h64, err := Int64(0).Hash()
	require.NoError(t, err)
	require.NotEqual(t, h32, h64)
}

func TestScenarioS6EmptyStringVsEmptyBlob(t *testing.T) {
	hs, err := String("").Hash()
	require.NoError(t, err)
	hb, err := Blob(nil).Hash()
	require.NoError(t, err)
	require.NotEqual(t, hs, hb)
}

func TestScenarioS5VectorOrderMatters(t *testing.T) {
	forward := NewVector(Int32(1), Int32(2), Int32(3))
	backward := NewVector(Int32(3), Int32(2), Int32(1))

	hf, err := forward.Hash()
	require.NoError(t, err)
	hb, err := backward.Hash()
	require.NoError(t, err)
	require.NotEqual(t, hf, hb)
}

func TestSequenceHashDeterministic(t *testing.T) {
	v := NewVector(Int32(1), Int32(2), Int32(3))
	h1, err := v.Hash()
	require.NoError(t, err)
	h2, err := v.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestScenarioS4MapOrderIndependent(t *testing.T) {
	m1, err := NewMap().Insert(Int32(1), Int32(10))
	require.NoError(t, err)
	m1, err = m1.Insert(Int32(2), Int32(20))
	require.NoError(t, err)

	m2, err := NewMap().Insert(Int32(2), Int32(20))
	require.NoError(t, err)
	m2, err = m2.Insert(Int32(1), Int32(10))
	require.NoError(t, err)

	h1, err := m1.Hash()
	require.NoError(t, err)
	h2, err := m2.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestMapDuplicateKeyReplaces(t *testing.T) {
	m, err := NewMap().Insert(Int32(1), Int32(10))
	require.NoError(t, err)
	m, err = m.Insert(Int32(1), Int32(99))
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	other, err := NewMap().Insert(Int32(1), Int32(99))
	require.NoError(t, err)
	h1, err := m.Hash()
	require.NoError(t, err)
	h2, err := other.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestBoolLeafCanonicalBytes(t *testing.T) {
	tHash, err := Bool(true).Hash()
	require.NoError(t, err)
	fHash, err := Bool(false).Hash()
	require.NoError(t, err)
	require.NotEqual(t, tHash, fHash)
}

func TestFloatNaNCanonicalization(t *testing.T) {
	// Distinct NaN payloads must collapse to the same canonical pattern,
	// preserving invariant #2 (structural equality implies hash equality).
	nan1 := math.Float64frombits(0x7FF8000000000001)
	nan2 := math.Float64frombits(0x7FF800000000BEEF)

	h1, err := Float64(nan1).Hash()
	require.NoError(t, err)
	h2, err := Float64(nan2).Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestCharUTF8Encoding(t *testing.T) {
	ascii, err := Char('a').Hash()
	require.NoError(t, err)
	multibyte, err := Char('é').Hash()
	require.NoError(t, err)
	require.NotEqual(t, ascii, multibyte)
}

func TestNestedVectorOfMaps(t *testing.T) {
	m, err := NewMap().Insert(String("k"), Int32(1))
	require.NoError(t, err)
	v := NewVector(m, Null{}, String("x"))
	h1, err := v.Hash()
	require.NoError(t, err)
	h2, err := v.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}
