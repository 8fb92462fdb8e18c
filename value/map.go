package value

import (
	"bytes"
	"sort"

	"github.com/dacite/dacite/fuse"
	"github.com/dacite/dacite/hamt"
	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/typeid"
)

// MapEntry is a key/value pair held by a Map.
type MapEntry struct {
	Key, Val Value
}

// Map is an order-independent collection of entries, at most one per key
// (§3, §4.7). The uniqueness/replace-on-duplicate-key container below is
// a plain Go map keyed by the key's own value_hash — the replacement rule
// is a property of the (out of scope, §1) public construction API, not of
// identity. Identity is computed fresh in Hash by building a hamt.Trie
// keyed by entry_hash and sorting its walk by byte order, which gives the
// ascending big-endian fold §4.7 requires. The trie walk alone is in index
// order, which skips the low 4 bits of each word, so it is not relied on
// as the final order.
type Map struct {
	entries map[hash.H]MapEntry
}

// NewMap returns an empty Map.
func NewMap() Map {
	return Map{entries: map[hash.H]MapEntry{}}
}

// Insert returns a new Map with key bound to val, replacing any existing
// entry for a key with the same value_hash.
func (m Map) Insert(key, val Value) (Map, error) {
	kh, err := key.Hash()
	if err != nil {
		return Map{}, err
	}
	out := make(map[hash.H]MapEntry, len(m.entries)+1)
	for k, v := range m.entries {
		out[k] = v
	}
	out[kh] = MapEntry{Key: key, Val: val}
	return Map{entries: out}, nil
}

// Len returns the number of entries in m.
func (m Map) Len() int {
	return len(m.entries)
}

// Entries returns m's entries in unspecified order (the order Hash sees
// is ascending entry_hash order, computed internally; this accessor makes
// no such promise).
func (m Map) Entries() []MapEntry {
	out := make([]MapEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out
}

func (m Map) Hash() (hash.H, error) {
	trie := hamt.Empty[hash.H]()
	for _, e := range m.entries {
		kh, err := e.Key.Hash()
		if err != nil {
			return hash.H{}, err
		}
		vh, err := e.Val.Hash()
		if err != nil {
			return hash.H{}, err
		}
		eh, err := fuse.Fuse(kh, vh)
		if err != nil {
			return hash.H{}, err
		}
		trie, err = trie.Insert(eh, eh)
		if err != nil {
			return hash.H{}, err
		}
	}
	ordered := trie.Iter()
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i][:], ordered[j][:]) < 0
	})
	dataHash, err := foldFuse(typeid.Map, ordered)
	if err != nil {
		return hash.H{}, err
	}
	return valueHash(typeid.Map, dataHash)
}
