package typeid

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinHashesMatchSHA256(t *testing.T) {
	for _, name := range Builtins() {
		want := sha256.Sum256([]byte(name))
		require.Equal(t, [32]byte(want), [32]byte(Hash(name)), name)
	}
}

func TestBuiltinHashesPairwiseDistinct(t *testing.T) {
	names := Builtins()
	require.Len(t, names, 21)

	seen := make(map[string]string, len(names))
	for _, name := range names {
		h := Hash(name).Hex()
		if other, ok := seen[h]; ok {
			t.Fatalf("type hash collision between %q and %q", name, other)
		}
		seen[h] = name
	}
}

func TestExtensionNameHashesOnDemand(t *testing.T) {
	h1 := Hash("example.org/widget")
	h2 := Hash("example.org/widget")
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, Hash(String))
}
