package hamt

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dacite/dacite/hash"
	"github.com/dacite/dacite/metrics"
)

// Trie is a persistent, 32-way trie keyed by a 256-bit hash, descending
// via Index at each level. It backs value.Map, which builds one keyed by
// entry_hash. Iter visits children low-index-first (§4.8). Index reads
// only the top 60 bits of each word, so two keys that agree up to one of
// the skipped low nibbles and differ in it can come out of Iter in a
// different order than a byte-wise sort would give.
//
// Past MaxDepth, colliding keys fall back to a linear bucket per §4.7's
// collision-handling rule.
type Trie[T any] struct {
	root *node[T]
}

type nodeKind uint8

const (
	nodeLeaf nodeKind = iota
	nodeBranch
	nodeBucket
)

type node[T any] struct {
	kind nodeKind

	leafKey hash.H
	leafVal T

	children [32]*node[T]

	bucket []bucketEntry[T]
}

type bucketEntry[T any] struct {
	key hash.H
	val T
}

// Empty returns an empty trie.
func Empty[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert returns a new trie with key bound to val, replacing any existing
// entry for key (map identity is a property of the surviving entries, not
// insertion history — §4.7).
func (t *Trie[T]) Insert(key hash.H, val T) (*Trie[T], error) {
	newRoot, err := insert(t.root, key, val, 0)
	if err != nil {
		return nil, err
	}
	return &Trie[T]{root: newRoot}, nil
}

func insert[T any](n *node[T], key hash.H, val T, depth int) (*node[T], error) {
	if n == nil {
		metrics.TrieDepth.Observe(float64(depth))
		return &node[T]{kind: nodeLeaf, leafKey: key, leafVal: val}, nil
	}

	switch n.kind {
	case nodeLeaf:
		if n.leafKey == key {
			return &node[T]{kind: nodeLeaf, leafKey: key, leafVal: val}, nil
		}
		if depth >= MaxDepth {
			metrics.TrieDepth.Observe(float64(depth))
			return &node[T]{kind: nodeBucket, bucket: []bucketEntry[T]{
				{key: n.leafKey, val: n.leafVal},
				{key: key, val: val},
			}}, nil
		}
		branch := &node[T]{kind: nodeBranch}
		branch, err := insertIntoBranch(branch, n.leafKey, n.leafVal, depth)
		if err != nil {
			return nil, err
		}
		return insertIntoBranch(branch, key, val, depth)

	case nodeBranch:
		cp := &node[T]{kind: nodeBranch, children: n.children}
		idx, err := indexOf(key, depth)
		if err != nil {
			return nil, err
		}
		child, err := insert(cp.children[idx], key, val, depth+1)
		if err != nil {
			return nil, err
		}
		cp.children[idx] = child
		return cp, nil

	case nodeBucket:
		newBucket := make([]bucketEntry[T], 0, len(n.bucket)+1)
		replaced := false
		for _, e := range n.bucket {
			if e.key == key {
				newBucket = append(newBucket, bucketEntry[T]{key: key, val: val})
				replaced = true
				continue
			}
			newBucket = append(newBucket, e)
		}
		if !replaced {
			newBucket = append(newBucket, bucketEntry[T]{key: key, val: val})
		}
		return &node[T]{kind: nodeBucket, bucket: newBucket}, nil
	}

	return nil, fmt.Errorf("hamt: unreachable node kind %d", n.kind)
}

func insertIntoBranch[T any](branch *node[T], key hash.H, val T, depth int) (*node[T], error) {
	idx, err := indexOf(key, depth)
	if err != nil {
		return nil, err
	}
	child, err := insert(branch.children[idx], key, val, depth+1)
	if err != nil {
		return nil, err
	}
	branch.children[idx] = child
	return branch, nil
}

func indexOf(key hash.H, depth int) (uint8, error) {
	w0, w1, w2, w3 := key.ToWords()
	return Index(w0, w1, w2, w3, depth)
}

// Iter walks the trie in index order (children low-index-first, §4.8),
// with the entries of a collision bucket sorted by key bytes.
func (t *Trie[T]) Iter() []T {
	var out []T
	collect(t.root, &out)
	return out
}

func collect[T any](n *node[T], out *[]T) {
	if n == nil {
		return
	}
	switch n.kind {
	case nodeLeaf:
		*out = append(*out, n.leafVal)
	case nodeBranch:
		for _, c := range n.children {
			collect(c, out)
		}
	case nodeBucket:
		sorted := append([]bucketEntry[T]{}, n.bucket...)
		sort.Slice(sorted, func(i, j int) bool {
			return bytes.Compare(sorted[i].key[:], sorted[j].key[:]) < 0
		})
		for _, e := range sorted {
			*out = append(*out, e.val)
		}
	}
}

// Len returns the number of entries in the trie.
func (t *Trie[T]) Len() int {
	return len(t.Iter())
}
