package value

import (
	"github.com/dacite/dacite/fingertree"
	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/typeid"
)

// String is a sequence of Unicode code points. Its data_hash folds the
// value_hash of each Char leaf in order (§4.7: "the child's full
// value_hash is what enters the fold, not a raw byte").
type String string

func (s String) Hash() (hash.H, error) {
	runes := []rune(string(s))
	hs := make([]hash.H, len(runes))
	for i, r := range runes {
		h, err := Char(r).Hash()
		if err != nil {
			return hash.H{}, err
		}
		hs[i] = h
	}
	dataHash, err := foldFuse(typeid.String, hs)
	if err != nil {
		return hash.H{}, err
	}
	return valueHash(typeid.String, dataHash)
}

// Blob is a sequence of bytes, each a Uint8 leaf child.
type Blob []byte

func (b Blob) Hash() (hash.H, error) {
	hs := make([]hash.H, len(b))
	for i, by := range b {
		h, err := Uint8(by).Hash()
		if err != nil {
			return hash.H{}, err
		}
		hs[i] = h
	}
	dataHash, err := foldFuse(typeid.Blob, hs)
	if err != nil {
		return hash.H{}, err
	}
	return valueHash(typeid.Blob, dataHash)
}

// Vector is a sequence of arbitrary Values, backed by a persistent finger
// tree per spec §9 ("finger-tree nodes are a representation detail").
// Iter() always returns elements in insertion order regardless of how the
// tree happens to be shaped, which is what makes the fold below satisfy
// invariant 6.
type Vector struct {
	tree *fingertree.Tree[Value]
}

// NewVector builds a Vector containing vs, in order.
func NewVector(vs ...Value) Vector {
	t := fingertree.Empty[Value]()
	for _, v := range vs {
		t = t.PushBack(v)
	}
	return Vector{tree: t}
}

// Push returns a new Vector with v appended.
func (v Vector) Push(x Value) Vector {
	t := v.tree
	if t == nil {
		t = fingertree.Empty[Value]()
	}
	return Vector{tree: t.PushBack(x)}
}

// Len returns the number of elements in v.
func (v Vector) Len() int {
	if v.tree == nil {
		return 0
	}
	return v.tree.Len()
}

// Elements returns v's values in order.
func (v Vector) Elements() []Value {
	if v.tree == nil {
		return nil
	}
	return v.tree.Iter()
}

func (v Vector) Hash() (hash.H, error) {
	items := v.Elements()
	hs := make([]hash.H, len(items))
	for i, item := range items {
		h, err := item.Hash()
		if err != nil {
			return hash.H{}, err
		}
		hs[i] = h
	}
	dataHash, err := foldFuse(typeid.Vector, hs)
	if err != nil {
		return hash.H{}, err
	}
	return valueHash(typeid.Vector, dataHash)
}
